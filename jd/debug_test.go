//go:build jddebug

package jd

import "testing"

func TestComposeZeroOrdinalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("compose with ordinal 0 should panic in debug builds")
		}
	}()
	compose(0, 0)
}
