package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/marktree/maybe"
	"github.com/npillmayer/marktree/tree"
	"github.com/pkg/errors"
)

// AttrName is the name of the attribute holding inline styles.
const AttrName = "style"

// Parse parses the text of a `style` attribute. Property names are
// lower-cased. The final declaration need not be terminated by a semicolon.
func Parse(text string) (Declarations, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !strings.HasSuffix(text, ";") {
		text += ";" // douceur drops the value of an unterminated declaration
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing style %q", text)
	}
	r := make(Declarations, 0, len(decls))
	for _, d := range decls {
		r = r.With(KeyValue{
			Key:       strings.ToLower(d.Property),
			Value:     Property(d.Value),
			Important: d.Important,
		})
	}
	return r, nil
}

// Inline returns the declarations of the `style` attribute of a node.
// A node without `style` attribute has no declarations.
func Inline(n tree.Ref) (Declarations, error) {
	text, ok := tree.Attr(n, AttrName).Get()
	if !ok {
		return nil, nil
	}
	return Parse(text)
}

// Get returns the inline value of a property of a node, or Nothing if the
// node does not declare it.
func Get(n tree.Ref, key string) (maybe.Maybe[Property], error) {
	decls, err := Inline(n)
	if err != nil {
		return maybe.Nothing[Property](), err
	}
	kv, ok := decls.Get(key)
	return maybe.Of(kv.Value, ok), nil
}

// Set sets the inline value of a property and rewrites the `style`
// attribute of the node.
func Set(n tree.Ref, key string, value Property) error {
	decls, err := Inline(n)
	if err != nil {
		return err
	}
	key = strings.ToLower(key)
	important := false
	if kv, ok := decls.Get(key); ok {
		important = kv.Important
	}
	decls = decls.With(KeyValue{Key: key, Value: value, Important: important})
	tracer().Debugf("setting style %s = %s", key, value)
	return write(n, decls)
}

// Remove deletes a property from the inline styles of a node. If no
// declaration is left, the `style` attribute is removed.
func Remove(n tree.Ref, key string) error {
	decls, err := Inline(n)
	if err != nil {
		return err
	}
	return write(n, decls.Without(key))
}

func write(n tree.Ref, decls Declarations) error {
	var err error
	if len(decls) == 0 {
		_, err = tree.RemoveAttribute(n, AttrName)
	} else {
		_, err = tree.SetAttribute(n, AttrName, decls.String())
	}
	return err
}

// Lookup returns the value of a property of a node: the inline value, if
// declared, otherwise the user-agent default for the node's tag.
func Lookup(n tree.Ref, key string) (Property, error) {
	m, err := Get(n, key)
	if err != nil {
		return NullStyle, err
	}
	if p, ok := m.Get(); ok {
		return p, nil
	}
	return UserAgentDefault(tree.Tag(n), key), nil
}
