// Package service holds the task use cases. Every operation takes the
// authenticated user explicitly and never returns another user's tasks.
// Storage is reached through the store interfaces only.
package service
