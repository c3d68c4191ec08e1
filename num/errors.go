package num

import (
	"github.com/cockroachdb/errors"
)

// Common errors returned by functions in this module.
// Functions wrap these with the failing operation and its state,
// so use errors.Is to match them.
var (
	ErrOverflow            = errors.New("arithmetic overflow")
	ErrInverseDoesNotExist = errors.New("multiplicative inverse does not exist")
	ErrNegativeInput       = errors.New("negative input")
	ErrInvalidKey          = errors.New("invalid cipher key")
)
