// Package xmldoc parses XML byte streams of unknown or self-declared
// character encoding into an in-memory document tree. The encoding is
// sniffed from the leading bytes, and may be replaced mid-stream when
// the XML declaration names a different one; the decode layer switches
// decoders without losing or duplicating bytes.
package xmldoc

const Version = "0.1.0"

// ReadOptions controls one parse.
//
// EmptyTextNode: true - <tag></tag> will have a text node with empty
// content as its only child, while <tag/> won't.
//
// TrimText: true - trims leading and trailing whitespace in text nodes.
//
// RequireDecl: true - returns an error if the document doesn't start
// with an XML declaration. If this is set to false the parser cannot
// decode encodings other than UTF-8 unless Encoding below is set.
//
// Encoding: if set, the parser starts reading with this encoding, but
// still switches to the XML declaration's encoding when that names a
// different one. See the encoding package for valid labels.
type ReadOptions struct {
	EmptyTextNode bool
	TrimText      bool
	RequireDecl   bool
	Encoding      string
}

// NodeKind is the kind of a Node.
type NodeKind int

const (
	ElementNode NodeKind = iota + 1
	TextNode
	CDataNode
	CommentNode
	DocTypeNode
	ProcessingInstructionNode
)

// Node is one child of an element: either a handle to another element
// in the same document, or owned string content.
type Node struct {
	kind    NodeKind
	element Element
	content string
}

// Element is a lightweight handle into the arena of the Document that
// created it. It is only meaningful together with that document, and
// stays valid for the document's whole lifetime.
type Element struct {
	id int
}

// element is the arena record an Element handle points at.
type element struct {
	name       string
	attributes map[string]string
	namespaces map[string]string
	children   []Node
}

// Document owns all elements of one parsed document. Top-level nodes
// (normally one element plus optional comments, PIs and a doctype)
// hang off the container element.
type Document struct {
	version    string
	standalone bool
	store      []element
}
