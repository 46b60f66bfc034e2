package verification

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/render"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveIdentity(ctx context.Context, name string) (domain.PlayerIdentity, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.PlayerIdentity), args.Error(1)
}

func (m *MockResolver) FetchAttributes(ctx context.Context, stableID string) (domain.ProfileAttributes, error) {
	args := m.Called(ctx, stableID)
	return args.Get(0).(domain.ProfileAttributes), args.Error(1)
}

func (m *MockResolver) FetchGuild(ctx context.Context, stableID string) (*domain.GuildInfo, error) {
	args := m.Called(ctx, stableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuildInfo), args.Error(1)
}

type MockRoles struct {
	mock.Mock
}

func (m *MockRoles) GrantRole(ctx context.Context, guildID, userID, roleName string) error {
	args := m.Called(ctx, guildID, userID, roleName)
	return args.Error(0)
}

func (m *MockRoles) RevokeRole(ctx context.Context, guildID, userID, roleName string) error {
	args := m.Called(ctx, guildID, userID, roleName)
	return args.Error(0)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderWelcome(ctx context.Context, card render.WelcomeCard) ([]byte, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, userID string) (domain.VerificationRecord, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.VerificationRecord), args.Bool(1), args.Error(2)
}

func (m *MockStore) Put(ctx context.Context, record domain.VerificationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStore) LoadAll(ctx context.Context) (map[string]domain.VerificationRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.VerificationRecord), args.Error(1)
}

func (m *MockStore) PersistAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
