package xmldoc

// NewDocument returns an empty document holding only its container
// element. The version defaults to "1.0" until a parsed XML
// declaration overrides it.
func NewDocument() *Document {
	doc := &Document{version: "1.0"}
	doc.store = append(doc.store, element{
		attributes: map[string]string{},
		namespaces: map[string]string{},
	})
	return doc
}

// Container returns the implicit root element that collects the
// document's top-level nodes.
func (d *Document) Container() Element {
	return Element{id: 0}
}

func (d *Document) Version() string {
	return d.version
}

func (d *Document) Standalone() bool {
	return d.standalone
}

// RootElement returns the first element among the top-level nodes.
// A well-formed document has exactly one.
func (d *Document) RootElement() (Element, bool) {
	for _, n := range d.store[0].children {
		if el, ok := n.Element(); ok {
			return el, true
		}
	}
	return Element{}, false
}

// CreateElement allocates a new element in the document's arena and
// returns its handle. The element is not attached anywhere yet; use
// PushChild on its intended parent.
func (d *Document) CreateElement(name string) Element {
	d.store = append(d.store, element{
		name:       name,
		attributes: map[string]string{},
		namespaces: map[string]string{},
	})
	return Element{id: len(d.store) - 1}
}
