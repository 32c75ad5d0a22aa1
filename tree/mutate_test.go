package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureNodeNormalizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.tree")
	tracer().SetTraceLevel(tracing.LevelDebug)
	defer teardown()
	//
	n := NewNode("br", nil)
	if n.IsNormalized() {
		t.Fatal("expected fresh node to be header-only")
	}
	m, err := EnsureNode(Seq{n})
	require.NoError(t, err)
	if m != n {
		t.Error("expected EnsureNode([n]) to return n")
	}
	if !n.IsNormalized() || Attributes(n).Len() != 0 {
		t.Errorf("expected normalized node with empty attributes, is %v", n)
	}
	attrs := Attributes(n)
	EnsureNode(n)
	SetAttribute(n, "k", "v")
	if Attributes(n) != attrs {
		t.Error("expected normalization to be stable under repeated mutator calls")
	}
	_, err = EnsureNode(Seq{Leaf("x")})
	assert.True(t, errors.Is(err, ErrMalformedNode))
}

func TestSetAttributeIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.tree")
	defer teardown()
	//
	n := NewNode("a", A("href", "/"))
	_, err := SetAttribute(n, "class", "btn")
	require.NoError(t, err)
	once := Attributes(n).All()
	SetAttribute(n, "class", "btn")
	assert.Equal(t, once, Attributes(n).All())
	SetAttribute(n, "href", "/home")
	assert.Equal(t, []Attribute{{"href", "/home"}, {"class", "btn"}}, Attributes(n).All())
}

func TestSetAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.tree")
	defer teardown()
	//
	n := NewNode("img", nil)
	attrs := A("src", "x.png", "alt", "x")
	m, err := SetAttributes(n, attrs)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.True(t, Attributes(n).Equal(attrs))
	attrs.Set("src", "y.png")
	if v, _ := Attr(n, "src").Get(); v != "x.png" {
		t.Errorf("expected node to keep its own copy of attributes, src = %q", v)
	}
	SetAttributes(n, nil)
	assert.True(t, n.IsNormalized())
	assert.Equal(t, 0, Attributes(n).Len())
	RemoveAttribute(n, "src")
}

func TestAppendChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.tree")
	defer teardown()
	//
	n := NewNode("ul", nil, NewNode("li", nil, Leaf("1")))
	before := append([]Child(nil), Children(n)...)
	c := NewNode("li", nil, Leaf("2"))
	children, err := AppendChild(n, c)
	require.NoError(t, err)
	require.Len(t, children, len(before)+1)
	assert.Equal(t, before, children[:len(before)])
	assert.Equal(t, Child(c), children[len(children)-1])
	assert.Equal(t, children, Children(n))
	_, err = AppendChild(n, nil)
	assert.True(t, errors.Is(err, ErrInvalidReference))
	_, err = AppendChild(n, n)
	assert.True(t, errors.Is(err, ErrInvalidReference))
	_, err = AppendChild(Seq{}, c)
	assert.True(t, errors.Is(err, ErrMalformedNode))
}

func TestInsertChildBefore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.tree")
	defer teardown()
	//
	x, y := NewNode("x", nil), NewNode("y", nil)
	n := NewNode("n", nil, x, y)
	z := NewNode("z", nil)
	m, err := InsertChildBefore(n, z, y)
	require.NoError(t, err)
	assert.Equal(t, []Child{x, z, y}, Children(m))
	w := NewNode("w", nil)
	m, err = InsertChildBefore(Seq{n}, w, nil)
	require.NoError(t, err)
	assert.Equal(t, []Child{w, x, z, y}, Children(m))
	m, err = InsertChildBefore(n, Leaf("t"), Leaf("missing"))
	assert.True(t, errors.Is(err, ErrInvalidReference))
	assert.Nil(t, m)
	InsertChildBefore(n, Leaf("t"), y)
	assert.Equal(t, 3, IndexOfChild(n, Leaf("t")))
}

func TestInsertChildBeforeInvalidReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	x, y := NewNode("x", nil), NewNode("y", nil)
	n := NewNode("n", nil, x, y)
	_, err := InsertChildBefore(n, NewNode("z", nil), NewNode("w", nil))
	if !errors.Is(err, ErrInvalidReference) {
		t.Errorf("expected invalid reference error, is %v", err)
	}
	assert.Equal(t, []Child{x, y}, Children(n))
}

func TestInsertChildBeforeHeaderOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.tree")
	defer teardown()
	//
	n := NewNode("p", nil)
	m, err := InsertChildBefore(n, Leaf("first"), nil)
	require.NoError(t, err)
	assert.True(t, m.IsNormalized())
	assert.Equal(t, "first", Text(m))
}

func TestRemoveChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.tree")
	defer teardown()
	//
	x, y := NewNode("x", nil), NewNode("y", nil)
	n := NewNode("n", nil, x, Leaf("t"), y)
	_, err := RemoveChild(n, Leaf("t"))
	require.NoError(t, err)
	assert.Equal(t, []Child{x, y}, Children(n))
	_, err = RemoveChild(n, Leaf("t"))
	assert.True(t, errors.Is(err, ErrInvalidReference))
	_, err = RemoveChild(n, nil)
	assert.True(t, errors.Is(err, ErrInvalidReference))
	assert.Equal(t, -1, IndexOfChild(n, Leaf("t")))
	//
	before := Children(n)
	_, err = RemoveChild(n, x)
	require.NoError(t, err)
	assert.Equal(t, []Child{y}, Children(n))
	if before[1] != nil {
		t.Errorf("expected removed subtree to be dropped from the backing array, is %v", before[1])
	}
}
