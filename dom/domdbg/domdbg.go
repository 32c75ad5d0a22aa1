/*
Package domdbg implements helpers to debug a markup tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/marktree/tree"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented textual drawing of a markup tree, one line
// per element node or text leaf.
func Print(r tree.Ref) string {
	printer := tp.New()
	printNode(printer, mustResolve(r))
	return printer.String()
}

func printNode(printer tp.Tree, n *tree.Node) {
	label := n.Tag
	if attrs := tree.Attributes(n); attrs.Len() > 0 {
		label += " " + attrs.String()
	}
	children := tree.Children(n)
	if len(children) == 0 {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for _, ch := range children {
		switch c := ch.(type) {
		case tree.Leaf:
			branch.AddNode(fmt.Sprintf("%q", string(c)))
		case *tree.Node:
			printNode(branch, c)
		}
	}
}

func mustResolve(r tree.Ref) *tree.Node {
	n, err := tree.Resolve(r)
	if err != nil {
		panic(err)
	}
	return n
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	TextTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a markup tree. The diagram is in
// GraphViz (DOT) format. Element nodes are drawn as ellipses, text leafs
// as boxes.
func ToGraphViz(r tree.Ref, w io.Writer) error {
	root, err := tree.Resolve(r)
	if err != nil {
		return err
	}
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.TextTmpl = template.Must(template.New("textnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(textNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: &gparams, dict: make(map[*tree.Node]string, 256)}
	if err = g.nodes(root); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a markup tree and a testing.T, it will
// create a Graphiviz image of the tree and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(r tree.Ref, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(r, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	dict   map[*tree.Node]string
	texts  int
}

type node struct {
	N    *tree.Node
	Name string
}

type text struct {
	Text tree.Leaf
	Name string
}

type edge struct {
	From, To string
}

func (g *graph) nodes(n *tree.Node) error {
	name := g.name(n)
	if err := g.params.NodeTmpl.Execute(g.w, &node{n, name}); err != nil {
		return err
	}
	for _, ch := range tree.Children(n) {
		var chname string
		switch c := ch.(type) {
		case tree.Leaf:
			g.texts++
			chname = fmt.Sprintf("text%05d", g.texts)
			if err := g.params.TextTmpl.Execute(g.w, &text{c, chname}); err != nil {
				return err
			}
		case *tree.Node:
			if err := g.nodes(c); err != nil {
				return err
			}
			chname = g.name(c)
		default:
			continue
		}
		if err := g.params.EdgeTmpl.Execute(g.w, edge{name, chname}); err != nil {
			return err
		}
	}
	return nil
}

func (g *graph) name(n *tree.Node) string {
	name := g.dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[n] = name
	}
	return name
}

func shortText(t tree.Leaf) string {
	s := "\"\\\""
	if len(t) > 10 {
		s += string(t[:10]) + "...\\\"\""
	} else {
		s += string(t) + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .N.Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const textNodeTmpl = `{{ .Name }}	[ label={{ shortstring .Text }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
