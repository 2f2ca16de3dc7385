package domxml

// Attr is a single (name, value) attribute pair. Namespaced names keep
// their "prefix:local" form verbatim (§6, "Namespaces are preserved
// verbatim").
type Attr struct {
	Name  string
	Value string
}

// Node is one element in the mutable DOM tree. Children are kept in
// document order; Attrs likewise, so rewriting an attribute in place
// never reorders it and appending a new one adds it at the end (§4.10,
// "Attribute order within an element follows DOM iteration order").
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
	Parent   *Node
}

// NewNode returns a bare Node with the given tag name.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the named attribute's value, or def if absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr sets the named attribute, updating it in place if already
// present or appending it otherwise.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute, if present.
func (n *Node) RemoveAttr(name string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}

// AppendChild appends c to n's children and sets c's parent to n.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// RemoveChild removes c from n's children, if present.
func (n *Node) RemoveChild(c *Node) {
	for i, ch := range n.Children {
		if ch == c {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			c.Parent = nil
			return
		}
	}
}

// ReplaceChild replaces old with replacement in n's children, preserving
// position. No-op if old is not a child of n.
func (n *Node) ReplaceChild(old, replacement *Node) {
	for i, ch := range n.Children {
		if ch == old {
			replacement.Parent = n
			n.Children[i] = replacement
			old.Parent = nil
			return
		}
	}
}

// InsertSiblingAfter inserts sibling immediately after n in n's parent's
// child list. No-op if n has no parent.
func (n *Node) InsertSiblingAfter(sibling *Node) {
	p := n.Parent
	if p == nil {
		return
	}
	for i, ch := range p.Children {
		if ch == n {
			sibling.Parent = p
			rest := append([]*Node{sibling}, p.Children[i+1:]...)
			p.Children = append(p.Children[:i+1:i+1], rest...)
			return
		}
	}
}

// Clone returns a deep copy of n and its subtree, detached from any
// parent. Used by the flatten pipeline's <use> and marker expansion
// stages, which clone referenced subtrees before retargeting them.
func (n *Node) Clone() *Node {
	clone := &Node{
		Tag:  n.Tag,
		Text: n.Text,
	}
	clone.Attrs = make([]Attr, len(n.Attrs))
	copy(clone.Attrs, n.Attrs)
	for _, c := range n.Children {
		childClone := c.Clone()
		clone.AppendChild(childClone)
	}
	return clone
}

// Walk visits n and its descendants in document (pre-)order, calling fn on
// each. If fn returns false, that node's children are not visited.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindByID searches n's subtree for an element whose id attribute equals
// id, returning nil if not found.
func (n *Node) FindByID(id string) *Node {
	var found *Node
	n.Walk(func(cur *Node) bool {
		if found != nil {
			return false
		}
		if v, ok := cur.Attr("id"); ok && v == id {
			found = cur
			return false
		}
		return true
	})
	return found
}
