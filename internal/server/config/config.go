// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables and command-line flags,
// applied in that order.
package config

import "time"

// Config holds runtime settings for the Pegasus server.
//
// An empty DatabaseDSN runs the server on the in-memory store, an empty
// RabbitMQURL logs events instead of publishing them, and an empty RedisAddr
// disables the verification resend throttle.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
	LogLevel         string

	// TrustedProxies lists peer IPs whose x-forwarded-for header is used
	// as the client address in the login attempt ledger.
	TrustedProxies []string

	AccessTokenSecret                 string
	RefreshTokenSecret                string
	AccessTokenValidityDuration       time.Duration
	RefreshTokenValidityDuration      time.Duration
	VerificationTokenValidityDuration time.Duration
	ResetTokenValidityDuration        time.Duration
	BcryptCost                        int

	PinMaxAttempts     int
	PinLockoutDuration time.Duration

	// MailLinkBaseURL prefixes the verification and reset links in emails.
	MailLinkBaseURL string

	RabbitMQURL           string
	EventsExchange        string
	NotificationsExchange string
	ProvisioningQueue     string
	OutboxPollInterval    time.Duration
	OutboxBatchSize       int

	AccountNumberPrefix string
	DefaultCurrency     string

	RedisAddr     string
	RedisPassword string
	ResendLimit   int
	ResendWindow  time.Duration

	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string

	SweepSchedule   string
	ArchiveSchedule string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secrets are insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.LogLevel = "info"
	c.TrustedProxies = nil

	c.AccessTokenSecret = "accessSecret"
	c.RefreshTokenSecret = "refreshSecret"
	c.AccessTokenValidityDuration = 2 * time.Hour
	c.RefreshTokenValidityDuration = 30 * 24 * time.Hour
	c.VerificationTokenValidityDuration = 20 * time.Minute
	c.ResetTokenValidityDuration = time.Hour
	c.BcryptCost = 10

	c.PinMaxAttempts = 3
	c.PinLockoutDuration = 5 * time.Minute

	c.MailLinkBaseURL = "https://pegasus.com"

	c.RabbitMQURL = ""
	c.EventsExchange = "pegasus.events"
	c.NotificationsExchange = "pegasus.notifications"
	c.ProvisioningQueue = "pegasus.account-provisioning"
	c.OutboxPollInterval = 2 * time.Second
	c.OutboxBatchSize = 50

	c.AccountNumberPrefix = "100"
	c.DefaultCurrency = "NGN"

	c.RedisAddr = ""
	c.RedisPassword = ""
	c.ResendLimit = 3
	c.ResendWindow = time.Hour

	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""

	c.SweepSchedule = "@every 10m"
	c.ArchiveSchedule = "@daily"
}

// ArchiveEnabled reports whether login attempts should be exported to S3.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
