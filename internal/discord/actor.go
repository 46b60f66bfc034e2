package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
)

// discordHandle renders a user the way Hypixel stores it in the DISCORD social link.
// Accounts migrated to unique usernames report discriminator "0".
func discordHandle(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}

// interactionActor builds the verification actor for a guild interaction.
// It reports false for interactions outside a guild.
func interactionActor(i *discordgo.InteractionCreate) (domain.Actor, bool) {
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return domain.Actor{}, false
	}
	return domain.Actor{
		UserID:  i.Member.User.ID,
		GuildID: i.GuildID,
		Handle:  discordHandle(i.Member.User),
		IsAdmin: i.Member.Permissions&discordgo.PermissionAdministrator != 0,
	}, true
}
