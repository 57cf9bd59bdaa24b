package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/markjakearzadon/influencehub-gobackend/internal/auth"
)

type SessionStore struct{ mock.Mock }

func NewSessionStore(t testingT) *SessionStore {
	m := &SessionStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SessionStore) Save(ctx context.Context, s *auth.Session, ttl time.Duration) error {
	return m.Called(ctx, s, ttl).Error(0)
}

func (m *SessionStore) Get(ctx context.Context, id string) (*auth.Session, error) {
	args := m.Called(ctx, id)
	return ret[*auth.Session](args, 0), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type StateStore struct{ mock.Mock }

func NewStateStore(t testingT) *StateStore {
	m := &StateStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	return m.Called(ctx, state, ttl).Error(0)
}

func (m *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	args := m.Called(ctx, state)
	return args.Bool(0), args.Error(1)
}
