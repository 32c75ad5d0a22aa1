/*
Package style handles the inline styles of markup trees.

HTML elements may carry CSS declarations in their `style` attribute:

    <p style="color: red; margin-top: 1em !important">

This package parses such declarations (using the CSS parser of package
douceur), reads and modifies single properties, and writes the result back to
the attribute using the mutators of package tree. Cascading and style sheets
are out of scope; Lookup falls back to a small set of user-agent defaults only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'marktree.style'
func tracer() tracing.Trace {
	return tracing.Select("marktree.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a single style declaration.
type KeyValue struct {
	Key       string
	Value     Property
	Important bool
}

func (kv KeyValue) String() string {
	s := kv.Key + ": " + kv.Value.String()
	if kv.Important {
		s += " !important"
	}
	return s
}

// Declarations is an ordered list of style declarations, as found in a
// `style` attribute.
type Declarations []KeyValue

// Get returns the value of a property, if declared.
func (decls Declarations) Get(key string) (KeyValue, bool) {
	if i := decls.index(key); i >= 0 {
		return decls[i], true
	}
	return KeyValue{}, false
}

// With returns declarations where key is set to value. An existing
// declaration is replaced in place, otherwise it is appended. The receiver
// is not modified.
func (decls Declarations) With(kv KeyValue) Declarations {
	r := make(Declarations, len(decls), len(decls)+1)
	copy(r, decls)
	if i := r.index(kv.Key); i >= 0 {
		r[i] = kv
		return r
	}
	return append(r, kv)
}

// Without returns declarations with key removed. The receiver is not
// modified.
func (decls Declarations) Without(key string) Declarations {
	i := decls.index(key)
	if i < 0 {
		return decls
	}
	r := make(Declarations, 0, len(decls)-1)
	r = append(r, decls[:i]...)
	return append(r, decls[i+1:]...)
}

func (decls Declarations) index(key string) int {
	key = strings.ToLower(key)
	for i, kv := range decls {
		if kv.Key == key {
			return i
		}
	}
	return -1
}

// String formats declarations for use as the value of a `style` attribute.
func (decls Declarations) String() string {
	s := make([]string, len(decls))
	for i, kv := range decls {
		s[i] = kv.String()
	}
	return strings.Join(s, "; ")
}
