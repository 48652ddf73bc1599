package token

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// sliceReader serves a byte slice through the Reader interface in
// windows of at most chunk bytes, so tests can verify that event
// boundaries straddling a window edge are handled.
type sliceReader struct {
	data  []byte
	pos   int
	chunk int
}

func newSliceReader(s string, chunk int) *sliceReader {
	return &sliceReader{data: []byte(s), chunk: chunk}
}

func (r *sliceReader) FillBuf() ([]byte, error) {
	end := r.pos + r.chunk
	if end > len(r.data) {
		end = len(r.data)
	}
	return r.data[r.pos:end], nil
}

func (r *sliceReader) Consume(n int) {
	r.pos += n
	if r.pos > len(r.data) {
		r.pos = len(r.data)
	}
}

type expectedEvent struct {
	kind    Kind
	name    string
	content string
}

func drainEvents(t *testing.T, tk *Tokenizer) []*Event {
	t.Helper()
	var events []*Event
	for {
		ev, err := tk.Next()
		require.NoError(t, err, "Next should succeed")
		if ev.Kind() == EOF {
			return events
		}
		events = append(events, ev)
	}
}

func TestTokenizer(t *testing.T) {
	const input = `<?xml version="1.0"?><root a="1" b='two'><child/>text &amp; more<!-- a comment --><![CDATA[x < y]]><?xml-stylesheet href="a.css"?></root>`
	expected := []expectedEvent{
		{kind: Decl},
		{kind: StartTag, name: "root"},
		{kind: EmptyTag, name: "child"},
		{kind: Text, content: "text &amp; more"},
		{kind: Comment, content: " a comment "},
		{kind: CData, content: "x < y"},
		{kind: PI, content: `xml-stylesheet href="a.css"`},
		{kind: EndTag, name: "root"},
	}

	for _, chunk := range []int{1, 3, 7, 4096} {
		t.Run(fmt.Sprintf("chunk size %d", chunk), func(t *testing.T) {
			tk := New(newSliceReader(input, chunk))
			events := drainEvents(t, tk)
			require.Len(t, events, len(expected), "event count matches")
			for i, want := range expected {
				ev := events[i]
				require.Equal(t, want.kind, ev.Kind(), "event %d kind matches", i)
				require.Equal(t, want.name, string(ev.Name()), "event %d name matches", i)
				require.Equal(t, want.content, string(ev.Content()), "event %d content matches", i)
			}

			root := events[1]
			attrs := root.Attributes()
			require.Len(t, attrs, 2, "root carries both attributes")
			require.Equal(t, "a", string(attrs[0].Key), "attributes keep document order")
			require.Equal(t, "1", string(attrs[0].Value), "double quoted value matches")
			require.Equal(t, "b", string(attrs[1].Key), "second attribute key matches")
			require.Equal(t, "two", string(attrs[1].Value), "single quoted value matches")

			// after EOF, the tokenizer keeps reporting EOF
			ev, err := tk.Next()
			require.NoError(t, err, "Next past the end should succeed")
			require.Equal(t, EOF, ev.Kind(), "EOF is sticky")
		})
	}
}

func TestTokenizerDecl(t *testing.T) {
	tk := New(newSliceReader(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><r/>`, 4096))
	ev, err := tk.Next()
	require.NoError(t, err, "Next should succeed")
	require.Equal(t, Decl, ev.Kind(), "the first event is the declaration")

	v, err := ev.Version()
	require.NoError(t, err, "Version should be present")
	require.Equal(t, "1.0", string(v), "version matches")
	require.Equal(t, "UTF-8", string(ev.EncodingLabel()), "encoding label matches")
	require.Equal(t, "yes", string(ev.Standalone()), "standalone matches")

	// a declaration lookalike with a longer target is a plain PI
	tk = New(newSliceReader(`<?xmlfoo version="1.0"?><r/>`, 4096))
	ev, err = tk.Next()
	require.NoError(t, err, "Next should succeed")
	require.Equal(t, PI, ev.Kind(), "xmlfoo is not the XML declaration")

	tk = New(newSliceReader(`<?xml?><r/>`, 4096))
	ev, err = tk.Next()
	require.NoError(t, err, "Next should succeed")
	require.Equal(t, Decl, ev.Kind(), "a bare xml target is still the declaration")
	_, err = ev.Version()
	require.ErrorIs(t, err, ErrVersionRequired, "a declaration without a version is rejected on demand")
}

func TestTokenizerTrimText(t *testing.T) {
	const input = "<r>\n  hello  \n</r>"

	tk := New(newSliceReader(input, 4096))
	tk.TrimText(true)
	events := drainEvents(t, tk)
	require.Len(t, events, 3, "trimmed input yields start, text, end")
	require.Equal(t, "hello", string(events[1].Content()), "surrounding whitespace is stripped")

	tk = New(newSliceReader(input, 4096))
	events = drainEvents(t, tk)
	require.Equal(t, "\n  hello  \n", string(events[1].Content()), "without trimming the whitespace stays")

	tk = New(newSliceReader("<r>   </r>", 4096))
	tk.TrimText(true)
	events = drainEvents(t, tk)
	require.Len(t, events, 2, "an all-blank text run is suppressed when trimming")
}

func TestTokenizerDocType(t *testing.T) {
	inputs := map[string]string{
		`<!DOCTYPE html><r/>`: "html",
		`<!doctype html><r/>`: "html",
		`<!DOCTYPE root SYSTEM "root.dtd"><r/>`:        `root SYSTEM "root.dtd"`,
		`<!DOCTYPE root [ <!ENTITY e "<v>"> ]><r/>`:    `root [ <!ENTITY e "<v>"> ]`,
	}
	for input, expected := range inputs {
		tk := New(newSliceReader(input, 4096))
		ev, err := tk.Next()
		require.NoError(t, err, "Next should succeed for '%s'", input)
		require.Equal(t, DocType, ev.Kind(), "doctype kind for '%s'", input)
		require.Equal(t, expected, string(ev.Content()), "doctype content for '%s'", input)
	}
}

func TestTokenizerQuotedAngle(t *testing.T) {
	tk := New(newSliceReader(`<r a="x>y" b='p<q'/>`, 4096))
	ev, err := tk.Next()
	require.NoError(t, err, "Next should succeed")
	require.Equal(t, EmptyTag, ev.Kind(), "angle brackets inside quotes do not close the tag")

	attrs := ev.Attributes()
	require.Len(t, attrs, 2, "both attributes survive")
	require.Equal(t, "x>y", string(attrs[0].Value), "the quoted '>' is preserved")
	require.Equal(t, "p<q", string(attrs[1].Value), "the quoted '<' is preserved")
}

func TestTokenizerErrors(t *testing.T) {
	inputs := map[string]error{
		`<root><child>x</chld></root>`: ErrTagMismatch{Open: "child", Close: "chld"},
		`</root>`:                      ErrUnexpectedEndTag,
		`<root>text`:                   ErrUnexpectedEOF,
		`<root`:                        ErrUnterminatedTag,
		`<root><!-- oops</root>`:       ErrUnterminatedComment,
		`<root><![CDATA[oops</root>`:   ErrUnterminatedCDSect,
		`<root><?pi oops</root>`:       ErrUnterminatedPI,
		`<root><![CDAT[x]]></root>`:    ErrInvalidCDSect,
		`<root><!-x--></root>`:         ErrInvalidComment,
		`<root><!FOO></root>`:          ErrInvalidMarkup,
		`<!DOCTYPE><r/>`:               ErrDocTypeNameRequired,
		`<r a></r>`:                    ErrEqualSignRequired,
		`<r a=1></r>`:                  ErrQuoteRequired,
		`<r a="1></r>`:                 ErrUnterminatedTag,
		`<?xml version="1.0?><r/>`:    ErrUnterminatedAttribute,
		`<r =1></r>`:                   ErrAttributeNameRequired,
		`< ></ >`:                      ErrNameRequired,
	}
	for input, expected := range inputs {
		tk := New(newSliceReader(input, 4096))
		var err error
		for err == nil {
			var ev *Event
			ev, err = tk.Next()
			if err == nil && ev.Kind() == EOF {
				break
			}
		}
		require.Error(t, err, "tokenizing '%s' should fail", input)
		if me, ok := expected.(ErrTagMismatch); ok {
			var got ErrTagMismatch
			require.ErrorAs(t, err, &got, "error type matches for '%s'", input)
			require.Equal(t, me, got, "mismatch names match for '%s'", input)
		} else {
			require.ErrorIs(t, err, expected, "error matches for '%s'", input)
		}
	}
}

func TestTokenizerSequenceAcrossWindows(t *testing.T) {
	// comment and CDATA terminators split across one-byte windows
	const input = `<r><!--abc--><![CDATA[de]f]]></r>`
	tk := New(newSliceReader(input, 1))
	events := drainEvents(t, tk)
	require.Len(t, events, 4, "start, comment, cdata, end")
	require.Equal(t, "abc", string(events[1].Content()), "comment content survives windowing")
	require.Equal(t, "de]f", string(events[2].Content()), "cdata content with a lone ']' survives windowing")
}

func TestErrTagMismatchMessage(t *testing.T) {
	err := ErrTagMismatch{Open: "a", Close: "b"}
	require.Equal(t, "closing tag does not match ('a' != 'b')", err.Error(), "message format matches")
}
