//go:build !jddebug

package jd

const debug = false
