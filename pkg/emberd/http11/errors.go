package http11

import "errors"

var (
	// ErrInvalidMethod indicates the request line's method token is not
	// one of the recognized methods.
	ErrInvalidMethod = errors.New("http11: invalid or unsupported method")

	// ErrInvalidRequestLine indicates the method/path/version line is
	// missing a required space or CRLF terminator.
	ErrInvalidRequestLine = errors.New("http11: malformed request line")

	// ErrInvalidVersion indicates a version other than HTTP/1.1.
	ErrInvalidVersion = errors.New("http11: unsupported HTTP version")

	// ErrInvalidHeader indicates a header line with no ':' separator or
	// missing CRLF terminator.
	ErrInvalidHeader = errors.New("http11: malformed header line")

	// ErrInvalidStatusLine indicates the response status line doesn't
	// match code and reason exactly against the status table.
	ErrInvalidStatusLine = errors.New("http11: malformed or unrecognized status line")

	// ErrTruncated indicates the input ended before a terminator (the
	// blank line ending the header block) was found.
	ErrTruncated = errors.New("http11: truncated message")

	// ErrUnknownStatus is returned by Response serialization when asked
	// to emit a status code absent from the table — a programming error,
	// not a wire-level failure.
	ErrUnknownStatus = errors.New("http11: unknown response status code")
)
