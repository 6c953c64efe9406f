package postgres_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/platform/postgres"
	"github.com/phrazzld/taskr-api/internal/store"
	"github.com/phrazzld/taskr-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPostgresUserStore_Create(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)
		ctx := context.Background()

		user, err := domain.NewUser("create-"+uuid.NewString()[:8], "pw1")
		require.NoError(t, err)

		require.NoError(t, userStore.Create(ctx, user))
		assert.Empty(t, user.Password, "plaintext password should be cleared")
		require.NotEmpty(t, user.HashedPassword)
		assert.NotEqual(t, "pw1", user.HashedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("pw1")))

		var stored string
		err = tx.QueryRowContext(ctx, "SELECT hashed_password FROM users WHERE id = $1", user.ID).Scan(&stored)
		require.NoError(t, err)
		assert.Equal(t, user.HashedPassword, stored)
	})
}

func TestPostgresUserStore_CreateDuplicateUsername(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)
		ctx := context.Background()
		username := "dup-" + uuid.NewString()[:8]

		first, err := domain.NewUser(username, "pw1")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(ctx, first))

		second, err := domain.NewUser(username, "pw2")
		require.NoError(t, err)
		err = userStore.Create(ctx, second)

		assert.ErrorIs(t, err, store.ErrUsernameExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})
}

func TestPostgresUserStore_CreateInvalid(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)

		err := userStore.Create(context.Background(), &domain.User{ID: uuid.New(), Password: "pw"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
	})
}

func TestPostgresUserStore_FindByUsername(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, bcrypt.MinCost, nil)
		ctx := context.Background()

		user, err := domain.NewUser("find-"+uuid.NewString()[:8], "pw1")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(ctx, user))

		found, err := userStore.FindByUsername(ctx, user.Username)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.HashedPassword, found.HashedPassword)
		assert.Empty(t, found.Password)

		missing, err := userStore.FindByUsername(ctx, "nobody-"+uuid.NewString())
		assert.NoError(t, err, "absence is not an error")
		assert.Nil(t, missing)

		byID, err := userStore.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, byID.Username)

		_, err = userStore.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

// Concurrent sign-ups for one username race at the UNIQUE constraint;
// exactly one must win. This needs real connections, not a shared transaction.
func TestPostgresUserStore_ConcurrentDuplicate(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)
	ctx := context.Background()
	username := "race-" + uuid.NewString()[:8]

	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM users WHERE username = $1", username)
	})

	const attempts = 5
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := domain.NewUser(username, "pw1")
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = userStore.Create(ctx, user)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case store.IsDuplicateError(err):
			conflicted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
}
