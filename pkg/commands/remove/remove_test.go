// pkg/commands/remove/remove_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test uninstalling blocks from a project

package remove_test

import (
	"testing"

	"github.com/devw-tools/devw/pkg/blocks"
	"github.com/devw-tools/devw/pkg/commands/remove"
	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/testutil"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveBlocks(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.InitProject()
	env.WriteScope("security", "scope: security\nrules:\n  - id: local\n    content: Mine.\n")

	installer := blocks.NewProjectInstaller(env.FS, env.Root)
	_, err := installer.Install(testutil.SecurityBlock())
	require.NoError(t, err)
	_, err = installer.Install(testutil.TestingBlock())
	require.NoError(t, err)

	result, err := remove.RemoveBlocks(remove.RemoveBlocksOptions{
		ProjectRoot: env.Root,
		BlockIDs:    []string{"security-basics", "never-installed"},
		FS:          env.FS,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.BlockChange{
		{BlockID: "security-basics", Rules: 3},
		{BlockID: "never-installed", Rules: 0},
	}, result.Removed)

	assert.Equal(t, []string{"testing-standards"}, env.ConfigBlocks())
	sec := env.Scope("security")
	require.Len(t, sec.Rules, 1)
	assert.Equal(t, "local", sec.Rules[0].ID)
	assert.Len(t, env.Scope("testing").Rules, 1)
}

func TestRemoveBlocks_RequiresIDs(t *testing.T) {
	_, err := remove.RemoveBlocks(remove.RemoveBlocksOptions{ProjectRoot: "/x"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
