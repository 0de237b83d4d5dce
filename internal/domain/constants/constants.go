// Package constants holds shared environment and provider names.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by the config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Device platforms accepted at registration.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)
