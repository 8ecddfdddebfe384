package eveapi

import "fmt"

// ParseError wraps a response that was not well-formed XML. No partial
// results accompany it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a document whose layout cannot be trusted, such
// as an unsupported eveapi version marker or a result element that is
// structurally impossible for the feed.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string { return e.Reason }

// APIError is the upstream error envelope: invalid credentials, rate
// limiting, bad parameters. It arrives over a successful HTTP exchange,
// so callers doing batch work branch on it with errors.As and keep
// going.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// MissingIdentifierError reports a feed invoked without a required
// identifier. It is returned before any network traffic happens.
type MissingIdentifierError struct {
	Param string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("missing required identifier %q", e.Param)
}
