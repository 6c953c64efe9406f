// Package mocks provides shared test doubles for the store and auth interfaces.
//
// Most mocks use function fields with an in-memory default, so a test only
// overrides the calls it cares about:
//
//	users := mocks.NewMockUserStore()
//	users.FindByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
//	    return nil, store.ErrInternal
//	}
//
// TestifyMockUserStore is available when a test needs call expectations.
package mocks
