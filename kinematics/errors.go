package kinematics

import "errors"

var (
	// ErrDivisionByZero is returned by T and U when s is exactly zero.
	ErrDivisionByZero = errors.New("kinematics: s == 0 not allowed")

	// ErrInvalidArgument is returned for malformed arguments, such as a
	// negative virtuality.
	ErrInvalidArgument = errors.New("kinematics: invalid argument")

	// ErrDomain is returned when a value is evaluated outside the region
	// it is defined on, such as the Egg parametrisation outside its
	// winding range.
	ErrDomain = errors.New("kinematics: argument outside valid domain")
)
