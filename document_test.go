package xmldoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	require.Equal(t, "1.0", doc.Version(), "new documents default to version 1.0")
	require.False(t, doc.Standalone(), "new documents are not standalone")

	_, ok := doc.RootElement()
	require.False(t, ok, "an empty document has no root element")

	container := doc.Container()
	require.Empty(t, container.Children(doc), "the container starts empty")
}

func TestCreateElement(t *testing.T) {
	doc := NewDocument()
	container := doc.Container()

	root := doc.CreateElement("root")
	require.Equal(t, "root", root.Name(doc), "element name matches")
	container.PushChild(doc, NewElementNode(root))

	got, ok := doc.RootElement()
	require.True(t, ok, "the first element child of the container is the root")
	require.Equal(t, root, got, "RootElement returns the pushed element")

	child := doc.CreateElement("child")
	root.PushChild(doc, NewElementNode(child))
	root.PushChild(doc, NewTextNode("hello"))
	require.True(t, root.HasChildren(doc), "root now has children")

	children := root.Children(doc)
	require.Len(t, children, 2, "root has two children")
	el, ok := children[0].Element()
	require.True(t, ok, "the first child is an element")
	require.Equal(t, "child", el.Name(doc), "the child element name matches")
	require.Equal(t, "hello", children[1].Content(), "the text node content matches")
}

func TestRootElementSkipsNonElements(t *testing.T) {
	doc := NewDocument()
	container := doc.Container()
	container.PushChild(doc, NewCommentNode(" preamble "))
	container.PushChild(doc, NewDocTypeNode("root"))

	_, ok := doc.RootElement()
	require.False(t, ok, "comments and doctypes are not the root element")

	root := doc.CreateElement("root")
	container.PushChild(doc, NewElementNode(root))
	got, ok := doc.RootElement()
	require.True(t, ok, "the element child is found after the misc nodes")
	require.Equal(t, root, got, "RootElement returns the element")
}

func TestNodeKindString(t *testing.T) {
	data := map[NodeKind]string{
		ElementNode:               "element",
		TextNode:                  "text",
		CDataNode:                 "cdata",
		CommentNode:               "comment",
		DocTypeNode:               "doctype",
		ProcessingInstructionNode: "pi",
		NodeKind(0):               "<unknown>",
	}
	for kind, expected := range data {
		require.Equal(t, expected, kind.String(), "NodeKind string matches")
	}
}

func TestNodeContent(t *testing.T) {
	n := NewTextNode("abc")
	require.Equal(t, TextNode, n.Kind(), "node kind matches")
	require.Equal(t, "abc", n.Content(), "node content matches")

	_, ok := n.Element()
	require.False(t, ok, "a text node is not an element")
}
