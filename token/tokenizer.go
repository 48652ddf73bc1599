package token

import (
	"bytes"

	"github.com/lestrrat-go/xmldoc/internal/debug"
)

const blankCutset = "\t\n\r "

func isBlankCh(c byte) bool {
	return c == 0x20 || c == 0x9 || c == 0xa || c == 0xd
}

// Tokenizer pulls lexical events out of a Reader. It keeps a stack of
// open start tag names so that a closing tag that does not match the
// innermost open tag, or an input that ends with tags still open, is
// rejected here and never reaches the caller.
type Tokenizer struct {
	in       Reader
	trimText bool
	opened   [][]byte
	inMarkup bool
	eof      bool
}

func New(in Reader) *Tokenizer {
	return &Tokenizer{in: in}
}

// TrimText makes the tokenizer strip surrounding whitespace from Text
// events; events that become empty are suppressed entirely.
func (t *Tokenizer) TrimText(v bool) {
	t.trimText = v
}

// Next returns the next lexical event. Once the end of the input has
// been reached it keeps returning EOF events.
func (t *Tokenizer) Next() (*Event, error) {
	for {
		if t.eof {
			return &Event{kind: EOF}, nil
		}

		if t.inMarkup {
			t.inMarkup = false
			ev, err := t.readMarkup()
			if err != nil {
				return nil, err
			}
			if debug.Enabled {
				debug.Printf("token: %s", ev.kind)
			}
			return ev, nil
		}

		text, found, err := t.readUntil('<')
		if err != nil {
			return nil, err
		}
		if found {
			t.inMarkup = true
		} else {
			if len(t.opened) > 0 {
				return nil, ErrUnexpectedEOF
			}
			t.eof = true
		}
		if ev := t.textEvent(text); ev != nil {
			if debug.Enabled {
				debug.Printf("token: text (%d bytes)", len(ev.content))
			}
			return ev, nil
		}
	}
}

func (t *Tokenizer) textEvent(b []byte) *Event {
	if t.trimText {
		b = bytes.Trim(b, blankCutset)
	}
	if len(b) == 0 {
		return nil
	}
	return &Event{kind: Text, content: b}
}

func (t *Tokenizer) readMarkup() (*Event, error) {
	c, ok, err := t.peekByte()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnterminatedTag
	}
	switch c {
	case '/':
		t.in.Consume(1)
		return t.readEndTag()
	case '!':
		t.in.Consume(1)
		return t.readBang()
	case '?':
		t.in.Consume(1)
		return t.readPI()
	default:
		return t.readStartTag()
	}
}

func (t *Tokenizer) readStartTag() (*Event, error) {
	raw, err := t.readTag()
	if err != nil {
		return nil, err
	}

	kind := StartTag
	if n := len(raw); n > 0 && raw[n-1] == '/' {
		kind = EmptyTag
		raw = raw[:n-1]
	}

	name, rest := splitName(raw)
	if len(name) == 0 {
		return nil, ErrNameRequired
	}
	attrs, err := parseAttributes(rest)
	if err != nil {
		return nil, err
	}

	if kind == StartTag {
		t.opened = append(t.opened, name)
	}
	return &Event{kind: kind, name: name, attrs: attrs}, nil
}

func (t *Tokenizer) readEndTag() (*Event, error) {
	raw, err := t.readTag()
	if err != nil {
		return nil, err
	}
	name := bytes.Trim(raw, blankCutset)
	if len(name) == 0 {
		return nil, ErrNameRequired
	}

	if len(t.opened) == 0 {
		return nil, ErrUnexpectedEndTag
	}
	top := t.opened[len(t.opened)-1]
	if !bytes.Equal(top, name) {
		return nil, ErrTagMismatch{Open: string(top), Close: string(name)}
	}
	t.opened = t.opened[:len(t.opened)-1]

	return &Event{kind: EndTag, name: name}, nil
}

func (t *Tokenizer) readBang() (*Event, error) {
	c, err := t.readByte()
	if err != nil {
		return nil, err
	}
	switch c {
	case '-':
		c2, err := t.readByte()
		if err != nil {
			return nil, err
		}
		if c2 != '-' {
			return nil, ErrInvalidComment
		}
		content, err := t.readUntilSeq([]byte("-->"), ErrUnterminatedComment)
		if err != nil {
			return nil, err
		}
		return &Event{kind: Comment, content: content}, nil
	case '[':
		for _, want := range []byte("CDATA[") {
			cc, err := t.readByte()
			if err != nil {
				return nil, err
			}
			if cc != want {
				return nil, ErrInvalidCDSect
			}
		}
		content, err := t.readUntilSeq([]byte("]]>"), ErrUnterminatedCDSect)
		if err != nil {
			return nil, err
		}
		return &Event{kind: CData, content: content}, nil
	case 'D', 'd':
		return t.readDocType(c)
	default:
		return nil, ErrInvalidMarkup
	}
}

// readDocType scans to the '>' closing the doctype, balancing the
// brackets of an internal subset.
func (t *Tokenizer) readDocType(lead byte) (*Event, error) {
	buf := []byte{lead}
	depth := 0
	for {
		c, err := t.readByte()
		if err != nil {
			return nil, err
		}
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				return docTypeEvent(buf)
			}
		}
		buf = append(buf, c)
	}
}

func docTypeEvent(b []byte) (*Event, error) {
	if len(b) < 7 || !bytes.EqualFold(b[:7], []byte("DOCTYPE")) {
		return nil, ErrInvalidDocType
	}
	content := bytes.TrimLeft(b[7:], blankCutset)
	if len(content) == 0 {
		return nil, ErrDocTypeNameRequired
	}
	return &Event{kind: DocType, content: content}, nil
}

func (t *Tokenizer) readPI() (*Event, error) {
	content, err := t.readUntilSeq([]byte("?>"), ErrUnterminatedPI)
	if err != nil {
		return nil, err
	}
	if isXMLDecl(content) {
		attrs, err := parseAttributes(content[3:])
		if err != nil {
			return nil, err
		}
		return &Event{kind: Decl, attrs: attrs}, nil
	}
	return &Event{kind: PI, content: content}, nil
}

// isXMLDecl reports whether a '<?' token is the XML declaration. The
// target must be exactly "xml"; targets like "xml-stylesheet" are
// ordinary processing instructions.
func isXMLDecl(b []byte) bool {
	if len(b) < 3 || b[0] != 'x' || b[1] != 'm' || b[2] != 'l' {
		return false
	}
	return len(b) == 3 || isBlankCh(b[3])
}

func splitName(b []byte) (name, rest []byte) {
	for i := 0; i < len(b); i++ {
		if isBlankCh(b[i]) {
			return b[:i], b[i:]
		}
	}
	return b, nil
}

func parseAttributes(b []byte) ([]Attr, error) {
	var attrs []Attr
	i := 0
	for {
		for i < len(b) && isBlankCh(b[i]) {
			i++
		}
		if i >= len(b) {
			return attrs, nil
		}

		start := i
		for i < len(b) && b[i] != '=' && !isBlankCh(b[i]) {
			i++
		}
		key := b[start:i]
		if len(key) == 0 {
			return nil, ErrAttributeNameRequired
		}

		for i < len(b) && isBlankCh(b[i]) {
			i++
		}
		if i >= len(b) || b[i] != '=' {
			return nil, ErrEqualSignRequired
		}
		i++
		for i < len(b) && isBlankCh(b[i]) {
			i++
		}
		if i >= len(b) || (b[i] != '"' && b[i] != '\'') {
			return nil, ErrQuoteRequired
		}
		q := b[i]
		i++
		end := bytes.IndexByte(b[i:], q)
		if end < 0 {
			return nil, ErrUnterminatedAttribute
		}
		attrs = append(attrs, Attr{Key: key, Value: b[i : i+end]})
		i += end + 1
	}
}

func (t *Tokenizer) peekByte() (byte, bool, error) {
	buf, err := t.in.FillBuf()
	if err != nil {
		return 0, false, err
	}
	if len(buf) == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

func (t *Tokenizer) readByte() (byte, error) {
	c, ok, err := t.peekByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnexpectedEOF
	}
	t.in.Consume(1)
	return c, nil
}

// readUntil accumulates bytes up to the first occurrence of delim. The
// delimiter is consumed but not returned. found is false when the
// input ends before the delimiter shows up.
func (t *Tokenizer) readUntil(delim byte) (out []byte, found bool, err error) {
	for {
		buf, err := t.in.FillBuf()
		if err != nil {
			return nil, false, err
		}
		if len(buf) == 0 {
			return out, false, nil
		}
		if i := bytes.IndexByte(buf, delim); i >= 0 {
			out = append(out, buf[:i]...)
			t.in.Consume(i + 1)
			return out, true, nil
		}
		out = append(out, buf...)
		t.in.Consume(len(buf))
	}
}

// readUntilSeq accumulates bytes up to the first occurrence of seq,
// which may straddle a buffer boundary. seq is consumed but not
// returned; onEOF is returned when the input ends first.
func (t *Tokenizer) readUntilSeq(seq []byte, onEOF error) ([]byte, error) {
	var out []byte
	for {
		buf, err := t.in.FillBuf()
		if err != nil {
			return nil, err
		}
		if len(buf) == 0 {
			return nil, onEOF
		}

		base := len(out)
		out = append(out, buf...)
		from := base - len(seq) + 1
		if from < 0 {
			from = 0
		}
		if i := bytes.Index(out[from:], seq); i >= 0 {
			p := from + i
			t.in.Consume(p + len(seq) - base)
			return out[:p], nil
		}
		t.in.Consume(len(buf))
	}
}

// readTag accumulates bytes up to the '>' that closes the current tag,
// skipping over quoted attribute values. The '>' is consumed but not
// returned.
func (t *Tokenizer) readTag() ([]byte, error) {
	var out []byte
	var quote byte
	for {
		buf, err := t.in.FillBuf()
		if err != nil {
			return nil, err
		}
		if len(buf) == 0 {
			return nil, ErrUnterminatedTag
		}
		for i := 0; i < len(buf); i++ {
			c := buf[i]
			switch {
			case quote != 0:
				if c == quote {
					quote = 0
				}
			case c == '"' || c == '\'':
				quote = c
			case c == '>':
				out = append(out, buf[:i]...)
				t.in.Consume(i + 1)
				return out, nil
			}
		}
		out = append(out, buf...)
		t.in.Consume(len(buf))
	}
}
