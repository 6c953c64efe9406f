package store_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/taskr-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// TestErrorDefinitions ensures the exported errors keep their messages and
// wrapping relationships, since the API layer maps on them.
func TestErrorDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("ErrUserNotFound", func(t *testing.T) {
		t.Parallel()
		assert.True(t, errors.Is(store.ErrUserNotFound, store.ErrNotFound))
		assert.Equal(t, "entity not found: user", store.ErrUserNotFound.Error())
	})

	t.Run("ErrTaskNotFound", func(t *testing.T) {
		t.Parallel()
		assert.True(t, errors.Is(store.ErrTaskNotFound, store.ErrNotFound))
		assert.False(t, errors.Is(store.ErrTaskNotFound, store.ErrUserNotFound))
	})

	t.Run("ErrUsernameExists", func(t *testing.T) {
		t.Parallel()
		assert.True(t, errors.Is(store.ErrUsernameExists, store.ErrDuplicate))
		assert.Contains(t, store.ErrUsernameExists.Error(), "username already exists")
	})

	t.Run("ErrInternal is standalone", func(t *testing.T) {
		t.Parallel()
		assert.False(t, errors.Is(store.ErrInternal, store.ErrNotFound))
		assert.False(t, errors.Is(store.ErrInternal, store.ErrDuplicate))
	})
}
