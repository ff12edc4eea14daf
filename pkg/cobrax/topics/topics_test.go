package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/blocks.md":    {Data: []byte("# Blocks\n\nBundles of rules.\n")},
		"help/markers.txt":  {Data: []byte("Marked regions.\n")},
		"help/ignored.json": {Data: []byte("{}")},
		"help/sub/deep.md":  {Data: []byte("deep\n")},
	}
}

func TestLoad(t *testing.T) {
	tm, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"blocks", "deep", "markers"}, tm.ListTopics())

	topic, ok := tm.GetTopic("blocks")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Format)
	assert.Contains(t, topic.Content, "Bundles of rules.")

	_, ok = tm.GetTopic("ignored")
	assert.False(t, ok)
}

func TestLoad_CustomExtensions(t *testing.T) {
	tm, err := Load(testFS(), "help", Options{Extensions: []string{".txt"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"markers"}, tm.ListTopics())
}

func TestLoad_MissingRoot(t *testing.T) {
	_, err := Load(testFS(), "nope", Options{})
	assert.Error(t, err)
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Title\n\nSome body text.\n", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some body text.")
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Short: "test app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "a subcommand", Run: func(*cobra.Command, []string) {}})

	tm, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)
	tm.Install(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestInstall_ShowsTopic(t *testing.T) {
	root, buf := newRoot(t)
	root.SetArgs([]string{"help", "markers"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Marked regions.\n", buf.String())
}

func TestInstall_ListsTopics(t *testing.T) {
	root, buf := newRoot(t)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Available help topics:")
	assert.Contains(t, buf.String(), "  blocks\n")
	assert.Contains(t, buf.String(), "'app help <topic>'")
}

func TestInstall_FallsBackToCommandHelp(t *testing.T) {
	root, buf := newRoot(t)
	root.SetArgs([]string{"help", "sub"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "a subcommand")
}
