package config

import "strings"

// AuthConfig holds identity configuration.
type AuthConfig struct {
	// AdminUserIDs is the list of user ids granted administrative access.
	AdminUserIDs []string
}

// LoadAuthConfigFromEnv loads identity configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	raw := GetEnv("ADMIN_USER_IDS", "")
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return AuthConfig{AdminUserIDs: ids}
}
