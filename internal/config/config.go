package config

import (
	"context"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	awsclient "gas-estimator/internal/client/aws"
	"gas-estimator/internal/constants"
	"gas-estimator/internal/helpers"
	"gas-estimator/internal/logger"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Defaults applied when the environment leaves a setting unset
const (
	DefaultPort                = "3000"
	DefaultEthRPCURL           = "https://ethereum-rpc.publicnode.com"
	DefaultRPCTimeout          = 10 * time.Second
	DefaultRPCKeepAlive        = 30 * time.Second
	DefaultMaxIdleConnsPerHost = 10
)

var (
	defaultCORSMethods = []string{"GET", "POST", "OPTIONS"}
	defaultCORSHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
)

// Config is the process configuration
type Config struct {
	Stage     string
	Port      string
	GinMode   string
	RPC       RPCConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig

	// RPCURLSecretARN names a Secrets Manager secret that overrides RPC.URL
	RPCURLSecretARN string
}

// RPCConfig configures the upstream node connection
type RPCConfig struct {
	URL                 string
	Timeout             time.Duration
	KeepAlive           time.Duration
	MaxIdleConnsPerHost int
	MaxRetries          int
}

// RateLimitConfig configures per-client rate limiting; RPS 0 disables it
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Enabled reports whether rate limiting is on
func (r RateLimitConfig) Enabled() bool {
	return r.RPS > 0
}

// CORSConfig configures cross-origin access
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// AllowAllOrigins reports whether any origin is accepted
func (c CORSConfig) AllowAllOrigins() bool {
	return len(c.AllowedOrigins) == 0 || (len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*")
}

// SecretFetcher resolves a single field of a stored secret
type SecretFetcher interface {
	GetSecretField(ctx context.Context, secretArn, field string) (string, error)
}

// LoadDotEnv loads a .env file if one exists. A missing file is not an
// error; variables already set in the environment win.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to load .env file")
	}
	return nil
}

// Load reads the configuration from the environment and, when
// ETH_RPC_URL_SECRET_ARN is set, resolves the RPC URL from Secrets Manager
func Load(ctx context.Context) (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if cfg.RPCURLSecretARN == "" {
		return cfg, nil
	}

	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create secrets manager client")
	}
	if err := cfg.ResolveSecrets(ctx, secrets); err != nil {
		return nil, err
	}

	logger.Info("Resolved RPC URL from Secrets Manager", zap.String("host", cfg.RPCHost()))
	return cfg, nil
}

// FromEnv builds a Config from environment variables and validates it
func FromEnv() (*Config, error) {
	cfg := &Config{
		Stage:           getEnvWithDefault(constants.StageEnv, constants.DevEnvironment),
		Port:            getEnvWithDefault(constants.APIPortEnv, DefaultPort),
		GinMode:         os.Getenv(constants.GinModeEnv),
		RPCURLSecretARN: os.Getenv(constants.EthRPCURLSecretARNEnv),
		RPC: RPCConfig{
			URL: getEnvWithDefault(constants.EthRPCURLEnv, DefaultEthRPCURL),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList(constants.CORSAllowedOriginsEnv, []string{"*"}),
			AllowedMethods: getEnvList(constants.CORSAllowedMethodsEnv, defaultCORSMethods),
			AllowedHeaders: getEnvList(constants.CORSAllowedHeadersEnv, defaultCORSHeaders),
			ExposedHeaders: getEnvList(constants.CORSExposedHeadersEnv, []string{"X-Correlation-ID"}),
		},
	}

	var err error
	if cfg.RPC.Timeout, err = getEnvDuration(constants.RPCTimeoutEnv, DefaultRPCTimeout); err != nil {
		return nil, err
	}
	if cfg.RPC.KeepAlive, err = getEnvDuration(constants.RPCKeepAliveEnv, DefaultRPCKeepAlive); err != nil {
		return nil, err
	}
	if cfg.RPC.MaxIdleConnsPerHost, err = getEnvInt(constants.RPCMaxIdleConnsPerHostEnv, DefaultMaxIdleConnsPerHost); err != nil {
		return nil, err
	}
	if cfg.RPC.MaxRetries, err = getEnvInt(constants.RPCMaxRetriesEnv, 0); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RPS, err = getEnvFloat(constants.RateLimitRPSEnv, 0); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = getEnvInt(constants.RateLimitBurstEnv, 0); err != nil {
		return nil, err
	}
	if cfg.CORS.AllowCredentials, err = getEnvBool(constants.CORSAllowCredentialsEnv, false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveSecrets replaces RPC.URL with the value stored under RPCURLSecretARN
func (c *Config) ResolveSecrets(ctx context.Context, secrets SecretFetcher) error {
	if c.RPCURLSecretARN == "" {
		return nil
	}

	rpcURL, err := secrets.GetSecretField(ctx, c.RPCURLSecretARN, constants.EthRPCURLEnv)
	if err != nil {
		return errors.Wrap(err, "failed to resolve RPC URL secret")
	}
	if err := validateRPCURL(rpcURL); err != nil {
		return errors.Wrap(err, "RPC URL secret")
	}

	c.RPC.URL = rpcURL
	return nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if !helpers.IsValidStage(c.Stage) {
		return errors.Errorf("invalid %s %q", constants.StageEnv, c.Stage)
	}
	if err := validateRPCURL(c.RPC.URL); err != nil {
		return err
	}
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return errors.Errorf("invalid %s %q", constants.APIPortEnv, c.Port)
	}
	if c.RPC.Timeout <= 0 {
		return errors.Errorf("%s must be positive", constants.RPCTimeoutEnv)
	}
	if c.RPC.KeepAlive < 0 {
		return errors.Errorf("%s must not be negative", constants.RPCKeepAliveEnv)
	}
	if c.RPC.MaxIdleConnsPerHost <= 0 {
		return errors.Errorf("%s must be positive", constants.RPCMaxIdleConnsPerHostEnv)
	}
	if c.RPC.MaxRetries < 0 {
		return errors.Errorf("%s must not be negative", constants.RPCMaxRetriesEnv)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.Errorf("%s and %s must not be negative", constants.RateLimitRPSEnv, constants.RateLimitBurstEnv)
	}
	if c.CORS.AllowCredentials && c.CORS.AllowAllOrigins() {
		return errors.Errorf("%s cannot be used with a wildcard origin", constants.CORSAllowCredentialsEnv)
	}
	return nil
}

// RPCHost returns the host part of the RPC URL, safe to log
func (c *Config) RPCHost() string {
	u, err := url.Parse(c.RPC.URL)
	if err != nil {
		return ""
	}
	return u.Host
}

// IsProduction reports whether the service runs in the prod stage
func (c *Config) IsProduction() bool {
	return c.Stage == constants.ProdEnvironment
}

func validateRPCURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(err, "invalid RPC URL")
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return errors.Errorf("invalid RPC URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("invalid RPC URL: missing host")
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		// Bare integers are seconds
		secs, intErr := strconv.Atoi(value)
		if intErr != nil {
			return 0, errors.Wrapf(err, "invalid %s", key)
		}
		d = time.Duration(secs) * time.Second
	}
	return d, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return f, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s", key)
	}
	return b, nil
}
