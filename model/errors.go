package model

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is wrapped by every error caused by caller input.
var ErrInvalidArgument = errors.New("invalid argument")

func InvalidArgumentf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
