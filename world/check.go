package world

import "errors"

var CheckCrashes = true
var CheckFailed error

// ErrInvalidParams is wrapped by every error returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid params")

// Check panics if e is not nil. Set CheckCrashes to false to only remember the
// error in CheckFailed, which is useful when reading files that might still be
// written to.
func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}
