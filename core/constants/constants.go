package constants

import "time"

// Database
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Timeouts
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultTimeout        = 5 * time.Second
	ServerShutdownTimeout = 10 * time.Second
)

// Context keys
const (
	ContextTokenData = "token_data"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist    = "token:blacklist:"
	RedisKeyGuestColumns      = "guest:columns:"
	RedisKeyAnalyticsSnapshot = "analytics:snapshot:"
	RedisKeyAnalyticsVersion  = "analytics:version:"
)

// Guest list view
const (
	// MaxVisibleColumns caps the host-configurable middle columns of the
	// guest table. Adding a column beyond this is rejected, not truncated.
	MaxVisibleColumns = 5
)

// Analytics change detection
const (
	AnalyticsPollInterval = 10 * time.Second
)

// Task queues
const (
	QueueDefault  = "default"
	QueueMessages = "messages"
)
