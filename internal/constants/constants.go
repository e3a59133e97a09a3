package constants

import "time"

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Linked services
const (
	DefaultTaskManagerBaseURL = "http://localhost:3001"
)

// Pagination
const (
	MinPage         = 1
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Validation limits
const (
	MinPasswordLength       = 8
	MaxPasswordLength       = 72
	MaxEmailLength          = 255
	MinProjectTitleLength   = 3
	MaxProjectTitleLength   = 100
	MaxProjectDescLength    = 500
	MinTaskTitleLength      = 1
	MaxTaskTitleLength      = 200
	MinJWTSecretLength      = 32
	DevelopmentJWTSecret    = "dev-secret-change-me-dev-secret-change-me"
	TokenLifetime           = 7 * 24 * time.Hour
	DefaultAuthRateLimit    = 10
	DefaultAuthRateWindow   = 10 * time.Second
	BearerPrefix            = "Bearer "
	AuthorizationHeaderName = "Authorization"
)
