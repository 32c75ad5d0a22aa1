package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<div class="nav"><a class="btn primary" href="/">Home</a><a class="btn" href="/x">X</a></div>
<p>Hello <b>World</b></p>
</body></html>`

func writePage(t *testing.T) string {
	name := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(name, []byte(page), 0o644))
	return name
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTagsCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.cli")
	defer teardown()
	//
	out, err := run(t, "tags", "a", writePage(t))
	require.NoError(t, err)
	assert.Equal(t, "a\tHome\na\tX\n", out)
}

func TestFindCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.cli")
	defer teardown()
	//
	out, err := run(t, "find", "--attr", "class", "--match", "prim", writePage(t))
	require.NoError(t, err)
	assert.Equal(t, "a\tHome\n", out)
	_, err = run(t, "find", "--match", "(", writePage(t))
	assert.Error(t, err)
}

func TestTextCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.cli")
	defer teardown()
	//
	out, err := run(t, "text", "--sep", "|", writePage(t))
	require.NoError(t, err)
	assert.Equal(t, "Home|X|Hello |World\n", out)
}

func TestDumpCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "marktree.cli")
	defer teardown()
	//
	out, err := run(t, "dump", writePage(t))
	require.NoError(t, err)
	assert.Contains(t, out, `"Home"`)
	out, err = run(t, "dump", "--dot", writePage(t))
	require.NoError(t, err)
	assert.Contains(t, out, "digraph g {")
	_, err = run(t, "--trace", "verbose", "dump", writePage(t))
	assert.Error(t, err)
}

func TestTraceFlag(t *testing.T) {
	var log bytes.Buffer
	installTracing(&log)
	defer tracing.SetTraceSelector(nil)
	//
	_, err := run(t, "--trace", "debug", "tags", "p", writePage(t))
	require.NoError(t, err)
	assert.Contains(t, log.String(), "loaded document")
	log.Reset()
	_, err = run(t, "--trace", "Error", "tags", "p", writePage(t))
	require.NoError(t, err)
	assert.Empty(t, log.String())
}
