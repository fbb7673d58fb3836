package mech2d

import "fmt"

// assert panics on invariant violations. These indicate caller bugs in
// scene setup, never runtime physical conditions, so they are not
// recoverable errors.
func assert(truth bool, msg string) {
	if !truth {
		panic(fmt.Sprint("assertion failed: ", msg))
	}
}
