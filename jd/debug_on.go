//go:build jddebug

package jd

//debug enables internal precondition checks that indicate a bug in a caller
//of this package rather than bad input.
const debug = true
