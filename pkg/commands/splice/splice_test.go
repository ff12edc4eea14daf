// pkg/commands/splice/splice_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test splicing generated content into target files

package splice_test

import (
	"testing"

	"github.com/devw-tools/devw/pkg/commands/splice"
	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/markers"
	"github.com/devw-tools/devw/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	target := env.Root + "/CLAUDE.md"
	env.WriteFile(target, "# Notes\n\nHand written.\n")

	opts := splice.SpliceOptions{Target: target, Content: "generated v1\n", FS: env.FS}
	result, err := splice.Splice(opts)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.False(t, result.Replaced)
	assert.Equal(t, target, result.Target)

	content := env.ReadFile(target)
	assert.Equal(t, "# Notes\n\nHand written.\n\n"+markers.MarkerBegin+"\ngenerated v1\n"+markers.MarkerEnd+"\n", content)

	again, err := splice.Splice(opts)
	require.NoError(t, err)
	assert.False(t, again.Changed)

	opts.Content = "generated v2\n"
	replaced, err := splice.Splice(opts)
	require.NoError(t, err)
	assert.True(t, replaced.Changed)
	assert.True(t, replaced.Replaced)
	content = env.ReadFile(target)
	assert.Contains(t, content, "Hand written.")
	assert.Contains(t, content, "generated v2")
	assert.NotContains(t, content, "generated v1")
}

func TestSplice_CreatesTarget(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	target := env.Root + "/out/rules.md"

	result, err := splice.Splice(splice.SpliceOptions{Target: target, Content: "x\n", FS: env.FS})
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.True(t, result.Created)
	assert.Equal(t, markers.Wrap("x\n"), env.ReadFile(target))
}

func TestSplice_RequiresTarget(t *testing.T) {
	_, err := splice.Splice(splice.SpliceOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
