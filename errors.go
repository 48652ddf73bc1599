package xmldoc

import "errors"

var (
	ErrCannotDecode      = errors.New("cannot decode input: unknown or unsupported encoding")
	ErrInvalidStandalone = errors.New("standalone document declaration has non boolean value")
	ErrInvalidUTF8       = errors.New("decoded content is not valid UTF-8")
	ErrMisplacedDecl     = errors.New("XML declaration found in the middle of the document")
	ErrMissingDecl       = errors.New("XML declaration not found at the start of the document")
)
