package hypixel

import "regexp"

// Upstream service labels for metrics and logs
const (
	ServiceMojang  = "mojang"
	ServiceHypixel = "hypixel"
)

// API paths
const (
	PathMojangProfile = "/users/profiles/minecraft/"
	PathPlayer        = "/player"
	PathGuild         = "/guild"
)

// validName matches names Mojang can resolve; anything else is rejected without a request.
var validName = regexp.MustCompile(`^[A-Za-z0-9_]{3,16}$`)
