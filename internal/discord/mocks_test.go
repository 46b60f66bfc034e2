package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/verification"
)

type MockVerification struct {
	mock.Mock
}

func (m *MockVerification) Start(ctx context.Context, actor domain.Actor) (verification.StartResult, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(verification.StartResult), args.Error(1)
}

func (m *MockVerification) Submit(ctx context.Context, actor domain.Actor, name string) (*verification.Outcome, error) {
	args := m.Called(ctx, actor, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verification.Outcome), args.Error(1)
}

func (m *MockVerification) Unverify(ctx context.Context, actor domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockVerification) State(ctx context.Context, userID string, isAdmin bool) (verification.State, error) {
	args := m.Called(ctx, userID, isAdmin)
	return args.Get(0).(verification.State), args.Error(1)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveIdentity(ctx context.Context, name string) (domain.PlayerIdentity, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.PlayerIdentity), args.Error(1)
}

type MockPoser struct {
	mock.Mock
}

func (m *MockPoser) RenderPose(ctx context.Context, name, stableID string) ([]byte, error) {
	args := m.Called(ctx, name, stableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockRoleChecker struct {
	mock.Mock
}

func (m *MockRoleChecker) MemberHasRole(ctx context.Context, guildID string, member *discordgo.Member, roleName string) bool {
	args := m.Called(ctx, guildID, member, roleName)
	return args.Bool(0)
}
