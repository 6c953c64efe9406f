// Package domain contains the core entities of the task tracker: users and
// the tasks they own. It has no knowledge of storage or transport.
package domain
