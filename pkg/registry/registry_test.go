package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID    int
	Value string
}

func TestNew(t *testing.T) {
	reg := New[testItem]()
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Names())
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1, Value: "v1"}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("register duplicate keeps first", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		got, ok := reg.Get("item1")
		require.True(t, ok)
		assert.Equal(t, 1, got.ID)
	})
}

func TestGetAndHas(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("a", testItem{ID: 1, Value: "x"}))

	got, ok := reg.Get("a")
	assert.True(t, ok)
	assert.Equal(t, testItem{ID: 1, Value: "x"}, got)
	assert.True(t, reg.Has("a"))

	got, ok = reg.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, testItem{}, got)
	assert.False(t, reg.Has("missing"))
}

func TestRegistrationOrder(t *testing.T) {
	reg := New[testItem]()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(name, testItem{ID: i}))
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Names())
	items := reg.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 0, items[0].ID)
	assert.Equal(t, 2, items[2].ID)
}

func TestConcurrentRegister(t *testing.T) {
	reg := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("item%d", n), n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
	assert.Len(t, reg.Names(), 50)
}
