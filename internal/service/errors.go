package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNullArgument is returned when a required request object is missing.
	ErrNullArgument = errors.New("argument must not be nil")

	// ErrInvalidArgument is returned for requests that are well formed but cannot be applied,
	// such as a duplicate country name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownPerson is returned when an update names a person id that does not exist. It is
	// an ErrInvalidArgument.
	ErrUnknownPerson = fmt.Errorf("%w: person id does not exist", ErrInvalidArgument)
)
