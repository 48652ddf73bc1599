package token

import "errors"

// Reader is the buffered view a Tokenizer pulls decoded text from.
// FillBuf returns the current unconsumed window, filling it from the
// underlying source when it is empty; an empty window with a nil error
// means the source is exhausted. Consume discards n bytes from the
// front of the window.
type Reader interface {
	FillBuf() ([]byte, error)
	Consume(n int)
}

var (
	ErrAttributeNameRequired = errors.New("attribute name was required here")
	ErrDocTypeNameRequired   = errors.New("doctype name required")
	ErrEqualSignRequired     = errors.New("'=' was required here")
	ErrEntityNotFound        = errors.New("entity not found")
	ErrInvalidCDSect         = errors.New("invalid CDATA section")
	ErrInvalidCharRef        = errors.New("invalid character reference")
	ErrInvalidComment        = errors.New("invalid comment section")
	ErrInvalidDocType        = errors.New("invalid DOCTYPE declaration")
	ErrInvalidMarkup         = errors.New("unrecognized '<!' markup")
	ErrNameRequired          = errors.New("name is required")
	ErrQuoteRequired         = errors.New("attribute value must be quoted")
	ErrSemicolonRequired     = errors.New("';' is required")
	ErrUnexpectedEndTag      = errors.New("closing tag without matching start tag")
	ErrUnexpectedEOF         = errors.New("unexpected end of input")
	ErrUnterminatedAttribute = errors.New("attribute value not terminated")
	ErrUnterminatedCDSect    = errors.New("CDATA section not terminated")
	ErrUnterminatedComment   = errors.New("comment not terminated")
	ErrUnterminatedPI        = errors.New("processing instruction not terminated")
	ErrUnterminatedTag       = errors.New("tag not terminated")
	ErrVersionRequired       = errors.New("version attribute required in XML declaration")
)

type ErrTagMismatch struct {
	Open  string
	Close string
}

func (e ErrTagMismatch) Error() string {
	return "closing tag does not match ('" + e.Open + "' != '" + e.Close + "')"
}
