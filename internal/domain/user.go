package domain

// Actor is the Discord member driving a verification interaction.
type Actor struct {
	UserID  string
	GuildID string
	// Handle is the Discord handle as Hypixel stores it in the DISCORD social link:
	// "name" for migrated accounts, "name#1234" for legacy ones.
	Handle  string
	IsAdmin bool
}
