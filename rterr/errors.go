// Package rterr defines the typed error taxonomy shared by every decoder,
// encoder, and transformer in the module: ParseError, RenderError,
// ValidationError, and TransformError. Each is a distinct struct rather
// than a shared error code, so callers can type-switch or errors.As on the
// failure they care about.
package rterr

import "fmt"

// ParseError is raised by a decoder (rtjson, mrkdwn, gfm) when input text
// or JSON cannot be turned into an AST. For mrkdwn, Offset is a byte
// offset into the original input; for rtjson it is the index of the
// offending element within its enclosing elements array. It is -1 when no
// single offset applies (e.g. a JSON structural error reported by the
// underlying decoder).
type ParseError struct {
	Format  string // "rtjson", "mrkdwn", or "gfm"
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: parse error: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("%s: parse error at offset %d: %s", e.Format, e.Offset, e.Message)
}

// RenderError is raised by an encoder when an AST holds something the
// target format cannot express: a node kind with no representation there
// (e.g. a Heading in RT JSON), block content that an RT JSON list item or
// quote cannot hold, or a link label that is not plain text. Encoders do
// not check Link.url or Broadcast.Range values.
type RenderError struct {
	Format  string
	Kind    string // the ast.Kind.String() of the offending node, if any
	Message string
}

func (e *RenderError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%s: render error: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("%s: render error on %s: %s", e.Format, e.Kind, e.Message)
}

// ValidationError reports a structural rule broken by caller-supplied
// data. transform.Apply returns one, wrapped in a TransformError, when a
// callback deletes the document root; decoders report bad input as
// ParseError instead.
type ValidationError struct {
	Kind    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s.%s: %s", e.Kind, e.Field, e.Message)
}

// TransformError wraps an error returned by a user-supplied TransformVisitor
// or callback, recording which node kind was being visited when it failed.
type TransformError struct {
	Kind string
	Err  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform error on %s: %s", e.Kind, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
