package config

// Store backends
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

// Default values for optional configuration
const (
	DefaultMojangAPIURL   = "https://api.mojang.com"
	DefaultHypixelAPIURL  = "https://api.hypixel.net"
	DefaultSkinServiceURL = "https://visage.surgeplay.com"
	DefaultStorePath      = "data/verification.json"
	DefaultBackgroundPath = "assets/background.png"
)
