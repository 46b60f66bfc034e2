package verification

import (
	"context"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/render"
)

// Resolver looks players up on Mojang and Hypixel
type Resolver interface {
	ResolveIdentity(ctx context.Context, name string) (domain.PlayerIdentity, error)
	FetchAttributes(ctx context.Context, stableID string) (domain.ProfileAttributes, error)
	FetchGuild(ctx context.Context, stableID string) (*domain.GuildInfo, error)
}

// RoleManager grants and revokes guild roles by name
type RoleManager interface {
	GrantRole(ctx context.Context, guildID, userID, roleName string) error
	RevokeRole(ctx context.Context, guildID, userID, roleName string) error
}

// Renderer draws the welcome banner
type Renderer interface {
	RenderWelcome(ctx context.Context, card render.WelcomeCard) ([]byte, error)
}

// Service drives a Discord member through verification
type Service interface {
	// Start handles a verify click. It never writes the store or touches roles.
	Start(ctx context.Context, actor domain.Actor) (StartResult, error)

	// Submit checks name against Hypixel and verifies the actor on success
	Submit(ctx context.Context, actor domain.Actor, name string) (*Outcome, error)

	// Unverify drops the actor's record and swaps their roles back
	Unverify(ctx context.Context, actor domain.Actor) error

	// State reports where userID currently sits in the flow
	State(ctx context.Context, userID string, isAdmin bool) (State, error)
}
