// File: utils/constants.go
package utils

// LoggerKey is the gin context key holding the request-scoped zap logger.
const LoggerKey = "logger"

// UserKey is the gin context key holding the authenticated *models.User.
const UserKey = "user"

// TokenKey is the gin context key holding the raw bearer token.
const TokenKey = "token"

// RevokedTokenPrefix is the prefix used for Redis revoked-token keys.
const RevokedTokenPrefix = "revoked:"

// BookingSessionPrefix is the prefix used for Redis booking flow keys.
const BookingSessionPrefix = "booking:"
