// Package token tokenizes decoded XML text into lexical events. It
// deliberately stops at the lexical level: entity references in text
// runs are passed through as written, attribute values are exposed raw
// with unescaping available on demand, and no tree is built. The
// document-level rules (single declaration, namespace routing, and so
// on) belong to the caller.
package token

// Kind identifies the kind of a lexical event.
type Kind int

const (
	EOF Kind = iota
	Decl
	StartTag
	EndTag
	EmptyTag
	Text
	CData
	Comment
	PI
	DocType
)

// Name returns a stable name for the Kind. If the Kind is invalid,
// Name returns the empty string.
func (k Kind) Name() string {
	switch k {
	case EOF:
		return "eof"
	case Decl:
		return "decl"
	case StartTag:
		return "starttag"
	case EndTag:
		return "endtag"
	case EmptyTag:
		return "emptytag"
	case Text:
		return "text"
	case CData:
		return "cdata"
	case Comment:
		return "comment"
	case PI:
		return "pi"
	case DocType:
		return "doctype"
	}
	return ""
}

func (k Kind) String() string {
	if s := k.Name(); s != "" {
		return s
	}
	return "<unknown>"
}

// Attr is a single attribute as written in a start tag. Value holds
// the raw bytes between the quotes; use UnescapedValue to expand
// entity and character references.
type Attr struct {
	Key   []byte
	Value []byte
}

func (a Attr) UnescapedValue() ([]byte, error) {
	return Unescape(a.Value)
}

// Event is a single lexical event. The byte slices it exposes are
// owned by the event and stay valid after the next Tokenizer pull.
type Event struct {
	kind    Kind
	name    []byte
	content []byte
	attrs   []Attr
}

func (e *Event) Kind() Kind { return e.kind }

// Name returns the tag name of a StartTag, EmptyTag or EndTag event.
func (e *Event) Name() []byte { return e.name }

// Content returns the raw content of a Text, CData, Comment, PI or
// DocType event. Text content retains entity references as written.
func (e *Event) Content() []byte { return e.content }

// Attributes returns the attributes of a StartTag, EmptyTag or Decl
// event in document order.
func (e *Event) Attributes() []Attr { return e.attrs }

func (e *Event) declAttr(name string) []byte {
	for _, a := range e.attrs {
		if string(a.Key) == name {
			return a.Value
		}
	}
	return nil
}

// Version returns the version value of a Decl event. A declaration
// without a version is malformed.
func (e *Event) Version() ([]byte, error) {
	v := e.declAttr("version")
	if v == nil {
		return nil, ErrVersionRequired
	}
	return v, nil
}

// EncodingLabel returns the encoding value of a Decl event, or nil if
// the declaration does not carry one.
func (e *Event) EncodingLabel() []byte { return e.declAttr("encoding") }

// Standalone returns the standalone value of a Decl event, or nil if
// the declaration does not carry one.
func (e *Event) Standalone() []byte { return e.declAttr("standalone") }
