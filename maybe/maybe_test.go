package maybe_test

import (
	"strings"
	"testing"

	. "github.com/npillmayer/marktree/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just("btn") // infers type
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%q)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != "btn" {
		t.Errorf("expected v to be \"btn\", is %q", v)
	}

	var w string
	nothing := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%q)", w)
	case m.Nothing():
		nothing = true
	}
	if !nothing || w != "" {
		t.Errorf("expected Nothing to match the Nothing-case, w = %q", w)
	}
}

func TestMaybeOf(t *testing.T) {
	m := Of("x", true)
	if v, ok := m.Get(); !ok || v != "x" {
		t.Errorf("expected Of(x, true) to be Just(x), is %v/%v", v, ok)
	}
	m = Of("x", false)
	if !m.IsNothing() {
		t.Error("expected Of(x, false) to be Nothing, isn't")
	}
	if _, ok := m.Get(); ok {
		t.Error("expected Get() on Nothing to report !ok")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if Just(7).WithDefault(100) != 7 {
		t.Error("expected Just(7) to have value 7, hasn't")
	}
	if Nothing[int]().WithDefault(100) != 100 {
		t.Error("expected Nothing to default to 100, doesn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just("primary").Map(strings.ToUpper)
	if x.WithDefault("") != "PRIMARY" {
		t.Errorf("expected Just(primary).Map(ToUpper) to be PRIMARY, is %q", x.WithDefault(""))
	}
	y := Nothing[string]().Map(strings.ToUpper)
	if !y.IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
}

func TestMaybeAndThen(t *testing.T) {
	nonEmpty := func(s string) Maybe[int] {
		if s != "" {
			return Just(len(s))
		}
		return Nothing[int]()
	}
	if n := AndThen(nonEmpty, Just("abc")).WithDefault(-1); n != 3 {
		t.Errorf("expected Just(abc) |> andThen(nonEmpty) to be 3, is %d", n)
	}
	if !AndThen(nonEmpty, Just("")).IsNothing() {
		t.Error("expected Just(\"\") |> andThen(nonEmpty) to be Nothing, isn't")
	}
	if !AndThen(nonEmpty, Nothing[string]()).IsNothing() {
		t.Error("expected Nothing |> andThen(nonEmpty) to be Nothing, isn't")
	}
}
