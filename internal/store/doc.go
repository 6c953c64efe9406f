// Package store defines the persistence contracts for users and tasks along
// with the error values every implementation must return. Callers depend on
// these interfaces so handlers and services never see driver types.
package store
