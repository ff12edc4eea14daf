// pkg/commands/status/status_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test rule-set drift detection against the cached hash

package status_test

import (
	"testing"

	"github.com/devw-tools/devw/pkg/blocks"
	"github.com/devw-tools/devw/pkg/commands/status"
	"github.com/devw-tools/devw/pkg/hashutil"
	"github.com/devw-tools/devw/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Lifecycle(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.InitProject()
	_, err := blocks.NewProjectInstaller(env.FS, env.Root).Install(testutil.SecurityBlock())
	require.NoError(t, err)

	opts := status.StatusOptions{ProjectRoot: env.Root, FS: env.FS}

	t.Run("no cached hash", func(t *testing.T) {
		result, err := status.Status(opts)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Rules)
		assert.Len(t, result.Hash, 64)
		assert.Empty(t, result.StoredHash)
		assert.True(t, result.Changed)
		assert.False(t, result.Written)
	})

	t.Run("write records the hash", func(t *testing.T) {
		withWrite := opts
		withWrite.Write = true
		result, err := status.Status(withWrite)
		require.NoError(t, err)
		assert.True(t, result.Written)

		stored, ok := hashutil.ReadStoredHash(env.FS, env.Root)
		require.True(t, ok)
		assert.Equal(t, result.Hash, stored)
	})

	t.Run("unchanged after write", func(t *testing.T) {
		result, err := status.Status(opts)
		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Equal(t, result.Hash, result.StoredHash)
	})

	t.Run("drift after install", func(t *testing.T) {
		_, err := blocks.NewProjectInstaller(env.FS, env.Root).Install(testutil.TestingBlock())
		require.NoError(t, err)

		result, err := status.Status(opts)
		require.NoError(t, err)
		assert.Equal(t, 4, result.Rules)
		assert.True(t, result.Changed)
	})
}

func TestStatus_EmptyProject(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := status.Status(status.StatusOptions{ProjectRoot: env.Root, FS: env.FS})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Rules)
	assert.Equal(t, hashutil.ComputeRulesHash(nil), result.Hash)
}
