package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the per-request workspace and actor identity.
type Scope struct {
	WorkspaceID string
	UserID      string
}
