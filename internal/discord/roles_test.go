package discord

import (
	"context"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedGuild(t *testing.T, tc *TestContext) {
	t.Helper()
	require.NoError(t, tc.Session.State.GuildAdd(&discordgo.Guild{
		ID: "guild-1",
		Roles: []*discordgo.Role{
			{ID: "role-verified", Name: "Verified"},
			{ID: "role-unverified", Name: "Unverified"},
			{ID: "role-staff", Name: "Staff"},
		},
	}))
}

func TestRoleService_GrantAndRevokeFromCache(t *testing.T) {
	tc := SetupTestContext(t)
	cachedGuild(t, tc)
	roles := NewRoleService(tc.Session)

	require.NoError(t, roles.GrantRole(context.Background(), "guild-1", "user-1", "Verified"))
	require.NoError(t, roles.RevokeRole(context.Background(), "guild-1", "user-1", "Unverified"))

	assert.Len(t, tc.Requests(http.MethodPut, "/guilds/guild-1/members/user-1/roles/role-verified"), 1)
	assert.Len(t, tc.Requests(http.MethodDelete, "/guilds/guild-1/members/user-1/roles/role-unverified"), 1)
	assert.Empty(t, tc.Requests(http.MethodGet, "/guilds/guild-1/roles"))
}

func TestRoleService_FallsBackToREST(t *testing.T) {
	tc := SetupTestContext(t)
	tc.RespondWith(http.MethodGet, "/guilds/guild-9/roles", `[{"id":"role-guild","name":"Guild Member"}]`)
	roles := NewRoleService(tc.Session)

	require.NoError(t, roles.GrantRole(context.Background(), "guild-9", "user-1", "Guild Member"))

	assert.Len(t, tc.Requests(http.MethodGet, "/guilds/guild-9/roles"), 1)
	assert.Len(t, tc.Requests(http.MethodPut, "/guilds/guild-9/members/user-1/roles/role-guild"), 1)
}

func TestRoleService_UnknownRole(t *testing.T) {
	tc := SetupTestContext(t)
	cachedGuild(t, tc)
	roles := NewRoleService(tc.Session)

	err := roles.GrantRole(context.Background(), "guild-1", "user-1", "Does Not Exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Does Not Exist")
	assert.Empty(t, tc.Requests(http.MethodPut, "/members/"))
}

func TestRoleService_MemberHasRole(t *testing.T) {
	tc := SetupTestContext(t)
	cachedGuild(t, tc)
	roles := NewRoleService(tc.Session)
	ctx := context.Background()

	staff := &discordgo.Member{Roles: []string{"role-verified", "role-staff"}}
	member := &discordgo.Member{Roles: []string{"role-verified"}}

	assert.True(t, roles.MemberHasRole(ctx, "guild-1", staff, "Staff"))
	assert.True(t, roles.MemberHasRole(ctx, "guild-1", staff, "staff"))
	assert.False(t, roles.MemberHasRole(ctx, "guild-1", member, "Staff"))
	assert.False(t, roles.MemberHasRole(ctx, "guild-1", nil, "Staff"))
	assert.False(t, roles.MemberHasRole(ctx, "guild-1", staff, ""))
}
