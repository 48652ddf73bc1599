package xmldoc

// Name returns a stable name for the NodeKind. If the NodeKind is
// invalid, Name returns the empty string.
func (k NodeKind) Name() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CDataNode:
		return "cdata"
	case CommentNode:
		return "comment"
	case DocTypeNode:
		return "doctype"
	case ProcessingInstructionNode:
		return "pi"
	}
	return ""
}

func (k NodeKind) String() string {
	if s := k.Name(); s != "" {
		return s
	}
	return "<unknown>"
}

func NewElementNode(e Element) Node {
	return Node{kind: ElementNode, element: e}
}

func NewTextNode(content string) Node {
	return Node{kind: TextNode, content: content}
}

func NewCDataNode(content string) Node {
	return Node{kind: CDataNode, content: content}
}

func NewCommentNode(content string) Node {
	return Node{kind: CommentNode, content: content}
}

func NewDocTypeNode(content string) Node {
	return Node{kind: DocTypeNode, content: content}
}

func NewPINode(content string) Node {
	return Node{kind: ProcessingInstructionNode, content: content}
}

func (n Node) Kind() NodeKind {
	return n.kind
}

// Element returns the element handle held by an element node.
func (n Node) Element() (Element, bool) {
	if n.kind == ElementNode {
		return n.element, true
	}
	return Element{}, false
}

// Content returns the node's owned text. Element nodes own no text of
// their own; fetch their children instead.
func (n Node) Content() string {
	return n.content
}
