package webhook

// SecurityConfig holds push notification security settings
type SecurityConfig struct {
	ChannelToken    string   // Expected X-Goog-Channel-Token value (optional)
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per channel
}
