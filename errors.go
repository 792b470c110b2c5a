package tesira

import (
	"errors"
	"fmt"
)

// Kind classifies an Error by which tier of spec.md's three-tier error
// handling design (transport, protocol, device) it belongs to.
type Kind int

const (
	// KindIO covers failures reading or writing the underlying byte
	// stream that are not specific to any transport implementation.
	KindIO Kind = iota
	// KindOperationFailed wraps a device-reported "-ERR" response. The
	// session remains usable after this error.
	KindOperationFailed
	// KindParsingFailed indicates the response text violated the TTP
	// grammar (§4.1) or was otherwise unparsable.
	KindParsingFailed
	// KindUnexpectedResponse indicates a syntactically valid response
	// arrived in a context that did not expect it (e.g. a "+OK"/"-ERR"
	// line while draining publish tokens).
	KindUnexpectedResponse
	// KindUnexpectedEnd indicates the stream ended mid-response.
	KindUnexpectedEnd
	// KindTransport wraps an error surfaced by the underlying
	// transport (e.g. a TCP dial failure) unchanged.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindOperationFailed:
		return "operation_failed"
	case KindParsingFailed:
		return "parsing_failed"
	case KindUnexpectedResponse:
		return "unexpected_response"
	case KindUnexpectedEnd:
		return "unexpected_end"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by this package. It unifies
// transport faults, protocol faults, and device-reported failures
// behind one Kind-tagged value per spec.md §4.5/§7.
type Error struct {
	Kind Kind
	// Response holds the offending device response for
	// KindOperationFailed (the ErrResponse, re-exposed as a
	// *ErrResponse) and KindUnexpectedResponse.
	Response any
	// Expected describes, for KindUnexpectedResponse, what the caller
	// was waiting for (e.g. "a publish token").
	Expected string
	err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("ttp: io error: %s", e.err)
	case KindTransport:
		return fmt.Sprintf("ttp: transport error: %s", e.err)
	case KindOperationFailed:
		if er, ok := e.Response.(*ErrResponse); ok {
			return fmt.Sprintf("ttp: operation failed on device: %s", er.Message)
		}
		return "ttp: operation failed on device"
	case KindParsingFailed:
		return fmt.Sprintf("ttp: response parsing failed: %s", e.err)
	case KindUnexpectedResponse:
		return fmt.Sprintf("ttp: unexpected response from device: %v (expected %s)", e.Response, e.Expected)
	case KindUnexpectedEnd:
		return "ttp: unexpected end of read stream"
	default:
		return "ttp: unknown error"
	}
}

// Unwrap exposes the underlying error, if any, so callers can use
// errors.Is/errors.As against transport-level sentinels (e.g. io.EOF).
func (e *Error) Unwrap() error {
	return e.err
}

func errIO(err error) error {
	return &Error{Kind: KindIO, err: err}
}

func errTransport(err error) error {
	return &Error{Kind: KindTransport, err: err}
}

func errOperationFailed(resp *ErrResponse) error {
	return &Error{Kind: KindOperationFailed, Response: resp}
}

func errParsingFailed(format string, args ...any) error {
	return &Error{Kind: KindParsingFailed, err: fmt.Errorf(format, args...)}
}

func errUnexpectedResponse(resp any, expected string) error {
	return &Error{Kind: KindUnexpectedResponse, Response: resp, Expected: expected}
}

func errUnexpectedEnd() error {
	return &Error{Kind: KindUnexpectedEnd, err: errors.New("unexpected end of input")}
}

// IsKind reports whether err is an *Error of the given Kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}
