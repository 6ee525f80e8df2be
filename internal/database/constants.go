package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConnections is the default pool size when not configured
	DefaultMaxConnections = 10

	// DefaultMaxIdleTime is how long a connection may sit idle before being closed
	DefaultMaxIdleTime = 5 * time.Minute

	// DefaultMaxLifetime is the maximum age of a pooled connection
	DefaultMaxLifetime = 30 * time.Minute
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToRunMigrations    = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
