package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/markjakearzadon/influencehub-gobackend/internal/clients/aimatcher"
	"github.com/markjakearzadon/influencehub-gobackend/internal/clients/youtube"
)

type ChannelSource struct{ mock.Mock }

func NewChannelSource(t testingT) *ChannelSource {
	m := &ChannelSource{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ChannelSource) GetChannel(ctx context.Context, handleOrID string) (*youtube.Channel, error) {
	args := m.Called(ctx, handleOrID)
	return ret[*youtube.Channel](args, 0), args.Error(1)
}

func (m *ChannelSource) LatestVideos(ctx context.Context, playlistID string) ([]youtube.Video, error) {
	args := m.Called(ctx, playlistID)
	return ret[[]youtube.Video](args, 0), args.Error(1)
}

type Matcher struct{ mock.Mock }

func NewMatcher(t testingT) *Matcher {
	m := &Matcher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Matcher) MatchInfluencers(ctx context.Context, criteria aimatcher.Criteria) ([]string, error) {
	args := m.Called(ctx, criteria)
	return ret[[]string](args, 0), args.Error(1)
}

func (m *Matcher) StartAgentCall(ctx context.Context, call aimatcher.CallRequest) error {
	return m.Called(ctx, call).Error(0)
}

type PasswordHasher struct{ mock.Mock }

func NewPasswordHasher(t testingT) *PasswordHasher {
	m := &PasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}
