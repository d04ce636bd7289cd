package errcode

// Code is a stable, short error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// NoData means "nothing this cycle": ready-line timeout, malformed
	// header, or a packet that does not fit the caller's buffer. Callers
	// retry on the next cycle; it is not a fault.
	NoData Code = "no_data"

	// EngineFault means the serial engine was found disabled or out of
	// master role and in-place recovery did not restore it.
	EngineFault Code = "engine_fault"

	// OpenFailed is the one-time session handshake failure. The device
	// keeps running with sensor-driven hits disabled.
	OpenFailed Code = "open_failed"

	Timeout        Code = "timeout"
	Malformed      Code = "malformed"
	Oversize       Code = "oversize"
	InvalidParams  Code = "invalid_params"
	InvalidPayload Code = "invalid_payload"
	Unsupported    Code = "unsupported"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
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

// IsNoData reports whether err is the normal empty-cycle outcome.
func IsNoData(err error) bool { return Of(err) == NoData }
