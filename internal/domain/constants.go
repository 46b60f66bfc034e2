package domain

// Social link keys as returned in player.socialMedia.links
const (
	SocialLinkDiscord = "DISCORD"
)

// Hypixel rank tags with special meaning in the classification chain
const (
	RankTagNormal    = "NORMAL"
	RankTagNone      = "NONE"
	RankTagSuperstar = "SUPERSTAR"
)

// Minecraft account names are 3-16 characters of [A-Za-z0-9_].
const (
	PlayerNameMinLength = 3
	PlayerNameMaxLength = 16
)
