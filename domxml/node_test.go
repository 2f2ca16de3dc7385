package domxml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorflat/svgflatten/domxml"
)

func TestSetAttrAppendsThenUpdatesInPlace(t *testing.T) {
	n := domxml.NewNode("rect")
	n.SetAttr("x", "0")
	n.SetAttr("y", "0")
	n.SetAttr("x", "10")

	require.Len(t, n.Attrs, 2)
	assert.Equal(t, "x", n.Attrs[0].Name)
	assert.Equal(t, "10", n.Attrs[0].Value)
	assert.Equal(t, "y", n.Attrs[1].Name)
}

func TestRemoveAttr(t *testing.T) {
	n := domxml.NewNode("rect")
	n.SetAttr("transform", "scale(2)")
	n.RemoveAttr("transform")
	_, ok := n.Attr("transform")
	assert.False(t, ok)
}

func TestAppendAndRemoveChild(t *testing.T) {
	parent := domxml.NewNode("g")
	child := domxml.NewNode("rect")
	parent.AppendChild(child)
	require.Len(t, parent.Children, 1)
	assert.Same(t, parent, child.Parent)

	parent.RemoveChild(child)
	assert.Len(t, parent.Children, 0)
	assert.Nil(t, child.Parent)
}

func TestReplaceChildPreservesPosition(t *testing.T) {
	parent := domxml.NewNode("g")
	a := domxml.NewNode("rect")
	b := domxml.NewNode("circle")
	c := domxml.NewNode("line")
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	replacement := domxml.NewNode("path")
	parent.ReplaceChild(b, replacement)

	require.Len(t, parent.Children, 3)
	assert.Equal(t, "path", parent.Children[1].Tag)
}

func TestInsertSiblingAfter(t *testing.T) {
	parent := domxml.NewNode("g")
	a := domxml.NewNode("rect")
	c := domxml.NewNode("line")
	parent.AppendChild(a)
	parent.AppendChild(c)

	b := domxml.NewNode("circle")
	a.InsertSiblingAfter(b)

	require.Len(t, parent.Children, 3)
	assert.Equal(t, "rect", parent.Children[0].Tag)
	assert.Equal(t, "circle", parent.Children[1].Tag)
	assert.Equal(t, "line", parent.Children[2].Tag)
}

func TestCloneIsDeepAndDetached(t *testing.T) {
	parent := domxml.NewNode("g")
	parent.SetAttr("id", "orig")
	child := domxml.NewNode("rect")
	parent.AppendChild(child)

	clone := parent.Clone()
	clone.SetAttr("id", "changed")

	origID, _ := parent.Attr("id")
	cloneID, _ := clone.Attr("id")
	assert.Equal(t, "orig", origID)
	assert.Equal(t, "changed", cloneID)
	assert.Nil(t, clone.Parent)
	require.Len(t, clone.Children, 1)
	assert.NotSame(t, child, clone.Children[0])
}

func TestWalkVisitsInDocumentOrder(t *testing.T) {
	root := domxml.NewNode("svg")
	a := domxml.NewNode("g")
	b := domxml.NewNode("rect")
	root.AppendChild(a)
	a.AppendChild(b)

	var order []string
	root.Walk(func(n *domxml.Node) bool {
		order = append(order, n.Tag)
		return true
	})
	assert.Equal(t, []string{"svg", "g", "rect"}, order)
}

func TestFindByID(t *testing.T) {
	root := domxml.NewNode("svg")
	target := domxml.NewNode("rect")
	target.SetAttr("id", "box")
	root.AppendChild(target)

	found := root.FindByID("box")
	require.NotNil(t, found)
	assert.Same(t, target, found)
	assert.Nil(t, root.FindByID("missing"))
}
