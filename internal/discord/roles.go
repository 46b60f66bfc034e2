package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// RoleService grants and revokes guild roles by name through a Discord session.
type RoleService struct {
	session *discordgo.Session
}

// NewRoleService creates a role service bound to session
func NewRoleService(session *discordgo.Session) *RoleService {
	return &RoleService{session: session}
}

// GrantRole adds the role called roleName to the member
func (r *RoleService) GrantRole(ctx context.Context, guildID, userID, roleName string) error {
	roleID, err := r.roleID(ctx, guildID, roleName)
	if err != nil {
		return err
	}
	if err := r.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("grant role %q: %w", roleName, err)
	}
	return nil
}

// RevokeRole removes the role called roleName from the member
func (r *RoleService) RevokeRole(ctx context.Context, guildID, userID, roleName string) error {
	roleID, err := r.roleID(ctx, guildID, roleName)
	if err != nil {
		return err
	}
	if err := r.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("revoke role %q: %w", roleName, err)
	}
	return nil
}

// roleID resolves a role name, preferring the gateway cache over a REST lookup.
func (r *RoleService) roleID(ctx context.Context, guildID, roleName string) (string, error) {
	roles, err := r.guildRoles(ctx, guildID)
	if err != nil {
		return "", err
	}
	for _, role := range roles {
		if role.Name == roleName {
			return role.ID, nil
		}
	}
	return "", fmt.Errorf("role %q not found in guild %s", roleName, guildID)
}

func (r *RoleService) guildRoles(ctx context.Context, guildID string) ([]*discordgo.Role, error) {
	if r.session.State != nil {
		if g, err := r.session.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
			return g.Roles, nil
		}
	}
	roles, err := r.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		slog.Warn(LogMsgRoleLookupFailed, "guild_id", guildID, "error", err)
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// MemberHasRole reports whether the member holds a role called roleName.
// Role names compare case-insensitively.
func (r *RoleService) MemberHasRole(ctx context.Context, guildID string, member *discordgo.Member, roleName string) bool {
	if member == nil || roleName == "" {
		return false
	}
	roles, err := r.guildRoles(ctx, guildID)
	if err != nil {
		return false
	}
	held := make(map[string]struct{}, len(member.Roles))
	for _, id := range member.Roles {
		held[id] = struct{}{}
	}
	for _, role := range roles {
		if !strings.EqualFold(role.Name, roleName) {
			continue
		}
		if _, ok := held[role.ID]; ok {
			return true
		}
	}
	return false
}
