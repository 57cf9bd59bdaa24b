// Package mocks holds testify mocks for the repository, client and session
// interfaces used across the services and handlers.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// ret returns args[i] as T, or the zero value when it was given as nil.
func ret[T any](args mock.Arguments, i int) T {
	var zero T
	v := args.Get(i)
	if v == nil {
		return zero
	}
	return v.(T)
}
