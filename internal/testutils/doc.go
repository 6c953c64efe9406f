// Package testutils provides helpers shared by tests across packages.
//
// # Domain entities
//
//	user := testutils.MustCreateUserForTest(t, testutils.WithUsername("alice"))
//	task := testutils.MustCreateTaskForTest(t,
//	    testutils.WithTaskUserID(user.ID),
//	    testutils.WithTaskStatus(domain.TaskStatusDone),
//	)
//
// # Tokens
//
//	tokens := testutils.NewTestJWTService(t)
//	token := testutils.MustGenerateToken(t, tokens, user)
//
// # Logs
//
//	log, handler := testutils.NewTestLogger()
//	// ... exercise code that logs through log ...
//	entries := handler.Entries()
package testutils
