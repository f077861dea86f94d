package constants

// Common string constants used throughout the codebase
const (
	// Service identity
	ServiceName = "gas-estimator"

	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	LocalEnvironment = "local"
	TestEnvironment  = "test"

	// Health
	HealthyStatus = "healthy"
)

// Environment variable names
const (
	StageEnv                  = "STAGE"
	APIPortEnv                = "API_PORT"
	LogLevelEnv               = "LOG_LEVEL"
	GinModeEnv                = "GIN_MODE"
	EthRPCURLEnv              = "ETH_RPC_URL"
	EthRPCURLSecretARNEnv     = "ETH_RPC_URL_SECRET_ARN"
	RPCTimeoutEnv             = "RPC_TIMEOUT"
	RPCKeepAliveEnv           = "RPC_KEEP_ALIVE"
	RPCMaxIdleConnsPerHostEnv = "RPC_MAX_IDLE_CONNS_PER_HOST"
	RPCMaxRetriesEnv          = "RPC_MAX_RETRIES"
	RateLimitRPSEnv           = "RATE_LIMIT_RPS"
	RateLimitBurstEnv         = "RATE_LIMIT_BURST"
	CORSAllowedOriginsEnv     = "CORS_ALLOWED_ORIGINS"
	CORSAllowedMethodsEnv     = "CORS_ALLOWED_METHODS"
	CORSAllowedHeadersEnv     = "CORS_ALLOWED_HEADERS"
	CORSExposedHeadersEnv     = "CORS_EXPOSED_HEADERS"
	CORSAllowCredentialsEnv   = "CORS_ALLOW_CREDENTIALS"
)
