package xmldoc

// Element methods take the owning document explicitly: the handle
// itself carries no pointer, so there is nothing to outlive or to keep
// alive, and tearing down the document tears down every element.

func (e Element) record(d *Document) *element {
	return &d.store[e.id]
}

// Name returns the qualified tag name as written, prefix included.
func (e Element) Name(d *Document) string {
	return e.record(d).name
}

// Attributes returns the element's attribute map. xmlns declarations
// are never in here; see NamespaceDecls.
func (e Element) Attributes(d *Document) map[string]string {
	return e.record(d).attributes
}

func (e Element) Attribute(d *Document, name string) (string, bool) {
	v, ok := e.record(d).attributes[name]
	return v, ok
}

// NamespaceDecls returns the namespace declarations made on this
// element, keyed by prefix. The default namespace is keyed by the
// empty string.
func (e Element) NamespaceDecls(d *Document) map[string]string {
	return e.record(d).namespaces
}

// Children returns the element's child nodes in document order.
func (e Element) Children(d *Document) []Node {
	return e.record(d).children
}

func (e Element) HasChildren(d *Document) bool {
	return len(e.record(d).children) > 0
}

// PushChild appends n to the element's children. n must belong to the
// same document.
func (e Element) PushChild(d *Document, n Node) {
	rec := e.record(d)
	rec.children = append(rec.children, n)
}
