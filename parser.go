package xmldoc

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	enc "golang.org/x/text/encoding"

	"github.com/lestrrat-go/xmldoc/encoding"
	"github.com/lestrrat-go/xmldoc/internal/debug"
	"github.com/lestrrat-go/xmldoc/token"
)

// DefaultReadOptions returns the options Parse and ParseReader use:
// empty elements written as <tag></tag> get an empty text child, text
// is trimmed, and a leading XML declaration is required.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		EmptyTextNode: true,
		TrimText:      true,
		RequireDecl:   true,
	}
}

func Parse(b []byte) (*Document, error) {
	return ParseReaderWithOptions(bytes.NewReader(b), DefaultReadOptions())
}

func ParseWithOptions(b []byte, opts ReadOptions) (*Document, error) {
	return ParseReaderWithOptions(bytes.NewReader(b), opts)
}

func ParseReader(in io.Reader) (*Document, error) {
	return ParseReaderWithOptions(in, DefaultReadOptions())
}

// ParseReaderWithOptions reads one XML document from in. On failure no
// document is returned, partial or otherwise. The only retryable
// condition at this level is an error from in itself, which is
// propagated unchanged.
func ParseReaderWithOptions(in io.Reader, opts ReadOptions) (*Document, error) {
	doc := NewDocument()
	p := documentParser{
		doc:   doc,
		opts:  opts,
		stack: []Element{doc.Container()},
	}
	if err := p.parseStart(in); err != nil {
		return nil, err
	}
	return p.doc, nil
}

type documentParser struct {
	doc      *Document
	opts     ReadOptions
	encoding enc.Encoding
	stack    []Element
}

// parseStart sniffs the encoding, reads the first event, and settles
// which encoding the rest of the document is decoded with before
// handing off to the main event loop.
func (p *documentParser) parseStart(in io.Reader) error {
	dr := newDecodeReader(in, nil)
	initEncoding, err := sniffEncoding(dr)
	if err != nil {
		return err
	}
	if label := p.opts.Encoding; label != "" {
		initEncoding = encoding.Load(label)
		if initEncoding == nil {
			return ErrCannotDecode
		}
	}
	dr.SetEncoding(initEncoding)

	tk := token.New(dr)
	tk.TrimText(p.opts.TrimText)

	ev, err := tk.Next()
	if err != nil {
		return err
	}
	if ev.Kind() == token.Decl {
		// A declaration without an encoding attribute keeps whatever
		// was sniffed (or configured); only a declared encoding that
		// differs triggers a switch.
		p.encoding = initEncoding
		if err := p.handleDecl(ev); err != nil {
			return err
		}
		// encoding.Load resolves the bare "UTF-16" label to the little
		// endian flavor, so a stream sniffed as big endian must not be
		// re-decoded little endian on the declaration's say-so.
		if p.encoding != initEncoding &&
			!(p.encoding == encoding.UTF16LE && initEncoding == encoding.UTF16BE) {
			if debug.Enabled {
				debug.Printf("switching encoding per XML declaration")
			}
			dr.SetEncoding(p.encoding)
			tk = token.New(dr)
			tk.TrimText(p.opts.TrimText)
		}
	} else if p.opts.RequireDecl {
		return ErrMissingDecl
	} else {
		done, err := p.handleEvent(ev)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	return p.parseContent(tk)
}

func (p *documentParser) parseContent(tk *token.Tokenizer) error {
	for {
		ev, err := tk.Next()
		if err != nil {
			return err
		}
		done, err := p.handleEvent(ev)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (p *documentParser) handleDecl(ev *token.Event) error {
	version, err := ev.Version()
	if err != nil {
		return err
	}
	v, err := toString(version)
	if err != nil {
		return err
	}
	p.doc.version = v

	if label := ev.EncodingLabel(); label != nil {
		name, err := toString(label)
		if err != nil {
			return err
		}
		e := encoding.Load(name)
		if e == nil {
			return ErrCannotDecode
		}
		// A declared UTF-8 means no decoding at all.
		if e == encoding.UTF8 {
			e = nil
		}
		p.encoding = e
	}

	p.doc.standalone = false
	if sa := ev.Standalone(); sa != nil {
		v, err := toString(sa)
		if err != nil {
			return err
		}
		switch strings.ToLower(v) {
		case "yes":
			p.doc.standalone = true
		case "no":
			p.doc.standalone = false
		default:
			return ErrInvalidStandalone
		}
	}
	return nil
}

// handleEvent dispatches one lexical event. It returns true when the
// document is finished.
func (p *documentParser) handleEvent(ev *token.Event) (bool, error) {
	if debug.Enabled {
		debug.Printf("event: %s", ev.Kind())
	}

	switch ev.Kind() {
	case token.StartTag:
		el, err := p.createElement(p.top(), ev)
		if err != nil {
			return false, err
		}
		p.stack = append(p.stack, el)
	case token.EndTag:
		el := p.pop()
		// distinguish <tag></tag> and <tag/>
		if p.opts.EmptyTextNode && !el.HasChildren(p.doc) {
			el.PushChild(p.doc, NewTextNode(""))
		}
	case token.EmptyTag:
		if _, err := p.createElement(p.top(), ev); err != nil {
			return false, err
		}
	case token.Text:
		content, err := toString(ev.Content())
		if err != nil {
			return false, err
		}
		p.top().PushChild(p.doc, NewTextNode(content))
	case token.CData:
		content, err := toString(ev.Content())
		if err != nil {
			return false, err
		}
		p.top().PushChild(p.doc, NewCDataNode(content))
	case token.Comment:
		content, err := toString(ev.Content())
		if err != nil {
			return false, err
		}
		p.top().PushChild(p.doc, NewCommentNode(content))
	case token.PI:
		content, err := toString(ev.Content())
		if err != nil {
			return false, err
		}
		p.top().PushChild(p.doc, NewPINode(content))
	case token.DocType:
		content, err := toString(ev.Content())
		if err != nil {
			return false, err
		}
		p.top().PushChild(p.doc, NewDocTypeNode(content))
	case token.Decl:
		return false, ErrMisplacedDecl
	case token.EOF:
		return true, nil
	}
	return false, nil
}

// createElement builds an element from a start or empty tag and
// attaches it under parent. xmlns attributes are routed into the
// namespace map and never show up among the plain attributes.
func (p *documentParser) createElement(parent Element, ev *token.Event) (Element, error) {
	name, err := toString(ev.Name())
	if err != nil {
		return Element{}, err
	}
	el := p.doc.CreateElement(name)

	attributes := el.Attributes(p.doc)
	namespaces := el.NamespaceDecls(p.doc)
	for _, attr := range ev.Attributes() {
		raw, err := token.Unescape(NormalizeSpace(attr.Value))
		if err != nil {
			return Element{}, err
		}
		key, err := toString(attr.Key)
		if err != nil {
			return Element{}, err
		}
		value, err := toString(raw)
		if err != nil {
			return Element{}, err
		}
		if key == "xmlns" {
			namespaces[""] = value
			continue
		}
		if prefix, ok := strings.CutPrefix(key, "xmlns:"); ok {
			namespaces[prefix] = value
			continue
		}
		attributes[key] = value
	}

	parent.PushChild(p.doc, NewElementNode(el))
	return el, nil
}

func (p *documentParser) top() Element {
	return p.stack[len(p.stack)-1]
}

// pop removes the innermost open element. The tokenizer rejects
// mismatched and stray end tags before they get here, so an underflow
// is a bug in this package, not bad input.
func (p *documentParser) pop() Element {
	if len(p.stack) <= 1 {
		panic("xmldoc: element stack underflow")
	}
	el := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return el
}

// toString converts decoded bytes to a string, rejecting sequences
// that are not valid UTF-8. With a decoder active the decode layer
// already guarantees valid output, so this mainly guards the
// no-decoder passthrough path.
func toString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
