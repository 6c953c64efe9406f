// Package auth handles credentials and bearer tokens: bcrypt password checks,
// HS256 JWT issue/verify, the sign-up/sign-in service and the strategy that
// resolves a token to its user.
package auth
