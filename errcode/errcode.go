package errcode

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Input validation, caught before any bus I/O.
	InvalidArgument Code = "invalid_argument"

	// Device lifecycle.
	NotInitialized     Code = "not_initialized"
	AlreadyInitialized Code = "already_initialized"

	// Identity handshake failed: the chip at the address is not one we know.
	Protocol Code = "protocol_mismatch"

	// I2C-level failure (NACK, arbitration loss, hardware fault).
	Transport Code = "transport"

	// Bus mutex could not be acquired within the bounded wait.
	Contention Code = "contention"

	// Bus has no configured pin assignment.
	Unconfigured Code = "bus_unconfigured"

	Error Code = "error" // generic fallback
)

// E is an optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	if e.Op != "" {
		return string(e.C) + ": " + e.Op
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Is reports whether err carries the given code.
func Is(err error, c Code) bool { return Of(err) == c }
