package config

// Environment variable names
const (
	EnvBotToken    = "BOT_TOKEN"
	EnvAppID       = "DISCORD_APP_ID"
	EnvAdminUserID = "ADMIN_USER_ID"
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvDBUser      = "DB_USER"
	EnvDBPassword  = "DB_PASSWORD"
	EnvDBHost      = "DB_HOST"
	EnvDBPort      = "DB_PORT"
	EnvDBName      = "DB_NAME"
)

// Default values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "skinshop-bot"
	DefaultVersion     = "dev"
	DefaultDBUser      = "postgres"
	DefaultDBPassword  = "postgres"
	DefaultDBHost      = "localhost"
	DefaultDBPort      = "5432"
	DefaultDBName      = "skinshop"
)
