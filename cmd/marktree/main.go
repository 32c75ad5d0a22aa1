/*
Command marktree parses HTML and inspects the resulting markup tree.

Usage:

    marktree dump  [--dot] [file]
    marktree tags  <tag> [file]
    marktree find  --attr class --match 'btn\b' [file]
    marktree text  [--sep ' '] [file]

Input is read from standard input if no file is given.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/marktree/dom"
	"github.com/npillmayer/marktree/dom/domdbg"
	"github.com/npillmayer/marktree/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// tracer traces with key 'marktree.cli'.
func tracer() tracing.Trace {
	return tracing.Select("marktree.cli")
}

var traceKeys = []string{"marktree.cli", "marktree.tree", "marktree.dom", "marktree.style"}

type options struct {
	trace          string
	keepWhitespace bool
	dot            bool
	attr           string
	match          string
	sep            string
}

func main() {
	installTracing(os.Stderr)
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "marktree",
		Short:         "Inspect markup trees of HTML documents",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setTraceLevel(opts.trace)
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.trace, "trace", "error", "trace level: debug, info or error")
	root.PersistentFlags().BoolVar(&opts.keepWhitespace, "keep-whitespace", false,
		"keep whitespace-only text leafs")

	dump := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the markup tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args, opts)
			if err != nil {
				return err
			}
			if opts.dot {
				return domdbg.ToGraphViz(doc, cmd.OutOrStdout())
			}
			fmt.Fprint(cmd.OutOrStdout(), domdbg.Print(doc))
			return nil
		},
	}
	dump.Flags().BoolVar(&opts.dot, "dot", false, "output GraphViz DOT format")

	tags := &cobra.Command{
		Use:   "tags <tag> [file]",
		Short: "List the text of all elements with a given tag",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args[1:], opts)
			if err != nil {
				return err
			}
			printNodes(cmd.OutOrStdout(), tree.ByTag(doc, args[0]))
			return nil
		},
	}

	find := &cobra.Command{
		Use:   "find [file]",
		Short: "List the text of all elements with an attribute matching a pattern",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args, opts)
			if err != nil {
				return err
			}
			nodes, err := tree.ByAttribute(doc, opts.attr, opts.match)
			if err != nil {
				return err
			}
			printNodes(cmd.OutOrStdout(), nodes)
			return nil
		},
	}
	find.Flags().StringVar(&opts.attr, "attr", "class", "attribute name")
	find.Flags().StringVar(&opts.match, "match", "", "regular expression to match attribute values")
	_ = find.MarkFlagRequired("match")

	text := &cobra.Command{
		Use:   "text [file]",
		Short: "Print all text of the document body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(args, opts)
			if err != nil {
				return err
			}
			var body tree.Ref = doc
			if bodies := tree.ByTag(doc, "body"); len(bodies) > 0 {
				body = bodies[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.Texts(body, opts.sep))
			return nil
		},
	}
	text.Flags().StringVar(&opts.sep, "sep", " ", "separator between text leafs")

	root.AddCommand(dump, tags, find, text)
	return root
}

// installTracing routes all trace keys to a single Go-logger based tracer
// writing to w.
func installTracing(w io.Writer) {
	trace := gologadapter.New()
	trace.SetOutput(w)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return trace
	}))
}

func setTraceLevel(level string) error {
	l := tracing.TraceLevelFromString(level)
	if !strings.EqualFold(l.String(), level) { // unknown levels map to Info
		return errors.Errorf("unknown trace level %q", level)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

func load(args []string, opts *options) (*tree.Node, error) {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	var domOpts []dom.Option
	if !opts.keepWhitespace {
		domOpts = append(domOpts, dom.SkipWhitespace())
	}
	root, err := dom.Parse(in, domOpts...)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded document %v", root)
	return root, nil
}

func printNodes(w io.Writer, nodes []*tree.Node) {
	for _, n := range nodes {
		fmt.Fprintf(w, "%s\t%s\n", n.Tag, tree.TextsSpace(n))
	}
}
