package domain

// PlayerIdentity is a resolved Minecraft profile. StableID is the undashed UUID.
type PlayerIdentity struct {
	DisplayName string `json:"name"`
	StableID    string `json:"id"`
}

// ProfileAttributes are the raw Hypixel player fields consumed by the rank classifier.
// Empty strings mean the tag was absent in the API response.
type ProfileAttributes struct {
	NetworkExp         float64           `json:"networkExp"`
	Rank               string            `json:"rank"`
	MonthlyPackageRank string            `json:"monthlyPackageRank"`
	NewPackageRank     string            `json:"newPackageRank"`
	PackageRank        string            `json:"packageRank"`
	SocialLinks        map[string]string `json:"-"`
}

// GuildInfo is the Hypixel guild a player belongs to.
type GuildInfo struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// DiscordLink returns the handle linked in the player's social media settings.
func (p ProfileAttributes) DiscordLink() (string, bool) {
	if p.SocialLinks == nil {
		return "", false
	}
	handle, ok := p.SocialLinks[SocialLinkDiscord]
	return handle, ok
}
