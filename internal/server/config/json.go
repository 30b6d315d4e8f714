package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pegasus/internal/flagx"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations use timex.Duration so
// both "15m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	LogLevel         string `json:"log_level"`

	TrustedProxies []string `json:"trusted_proxies"`

	AccessTokenSecret                 string         `json:"access_token_secret"`
	RefreshTokenSecret                string         `json:"refresh_token_secret"`
	AccessTokenValidityDuration       timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration      timex.Duration `json:"refresh_token_validity_duration"`
	VerificationTokenValidityDuration timex.Duration `json:"verification_token_validity_duration"`
	ResetTokenValidityDuration        timex.Duration `json:"reset_token_validity_duration"`
	BcryptCost                        int            `json:"bcrypt_cost"`

	PinMaxAttempts     int            `json:"pin_max_attempts"`
	PinLockoutDuration timex.Duration `json:"pin_lockout_duration"`

	MailLinkBaseURL string `json:"mail_link_base_url"`

	RabbitMQURL           string         `json:"rabbitmq_url"`
	EventsExchange        string         `json:"events_exchange"`
	NotificationsExchange string         `json:"notifications_exchange"`
	ProvisioningQueue     string         `json:"provisioning_queue"`
	OutboxPollInterval    timex.Duration `json:"outbox_poll_interval"`
	OutboxBatchSize       int            `json:"outbox_batch_size"`

	AccountNumberPrefix string `json:"account_number_prefix"`
	DefaultCurrency     string `json:"default_currency"`

	RedisAddr     string         `json:"redis_addr"`
	RedisPassword string         `json:"redis_password"`
	ResendLimit   int            `json:"resend_limit"`
	ResendWindow  timex.Duration `json:"resend_window"`

	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`

	SweepSchedule   string `json:"sweep_schedule"`
	ArchiveSchedule string `json:"archive_schedule"`
}

func toJson(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:                  c.EndpointAddrGRPC,
		DatabaseDSN:                       c.DatabaseDSN,
		LogLevel:                          c.LogLevel,
		TrustedProxies:                    c.TrustedProxies,
		AccessTokenSecret:                 c.AccessTokenSecret,
		RefreshTokenSecret:                c.RefreshTokenSecret,
		AccessTokenValidityDuration:       timex.Duration{Duration: c.AccessTokenValidityDuration},
		RefreshTokenValidityDuration:      timex.Duration{Duration: c.RefreshTokenValidityDuration},
		VerificationTokenValidityDuration: timex.Duration{Duration: c.VerificationTokenValidityDuration},
		ResetTokenValidityDuration:        timex.Duration{Duration: c.ResetTokenValidityDuration},
		BcryptCost:                        c.BcryptCost,
		PinMaxAttempts:                    c.PinMaxAttempts,
		PinLockoutDuration:                timex.Duration{Duration: c.PinLockoutDuration},
		MailLinkBaseURL:                   c.MailLinkBaseURL,
		RabbitMQURL:                       c.RabbitMQURL,
		EventsExchange:                    c.EventsExchange,
		NotificationsExchange:             c.NotificationsExchange,
		ProvisioningQueue:                 c.ProvisioningQueue,
		OutboxPollInterval:                timex.Duration{Duration: c.OutboxPollInterval},
		OutboxBatchSize:                   c.OutboxBatchSize,
		AccountNumberPrefix:               c.AccountNumberPrefix,
		DefaultCurrency:                   c.DefaultCurrency,
		RedisAddr:                         c.RedisAddr,
		RedisPassword:                     c.RedisPassword,
		ResendLimit:                       c.ResendLimit,
		ResendWindow:                      timex.Duration{Duration: c.ResendWindow},
		S3RootUser:                        c.S3RootUser,
		S3RootPassword:                    c.S3RootPassword,
		S3Bucket:                          c.S3Bucket,
		S3Region:                          c.S3Region,
		S3BaseEndpoint:                    c.S3BaseEndpoint,
		SweepSchedule:                     c.SweepSchedule,
		ArchiveSchedule:                   c.ArchiveSchedule,
	}
}

func (j *JsonConfig) apply(c *Config) {
	c.EndpointAddrGRPC = j.EndpointAddrGRPC
	c.DatabaseDSN = j.DatabaseDSN
	c.LogLevel = j.LogLevel
	c.TrustedProxies = j.TrustedProxies
	c.AccessTokenSecret = j.AccessTokenSecret
	c.RefreshTokenSecret = j.RefreshTokenSecret
	c.AccessTokenValidityDuration = j.AccessTokenValidityDuration.Duration
	c.RefreshTokenValidityDuration = j.RefreshTokenValidityDuration.Duration
	c.VerificationTokenValidityDuration = j.VerificationTokenValidityDuration.Duration
	c.ResetTokenValidityDuration = j.ResetTokenValidityDuration.Duration
	c.BcryptCost = j.BcryptCost
	c.PinMaxAttempts = j.PinMaxAttempts
	c.PinLockoutDuration = j.PinLockoutDuration.Duration
	c.MailLinkBaseURL = j.MailLinkBaseURL
	c.RabbitMQURL = j.RabbitMQURL
	c.EventsExchange = j.EventsExchange
	c.NotificationsExchange = j.NotificationsExchange
	c.ProvisioningQueue = j.ProvisioningQueue
	c.OutboxPollInterval = j.OutboxPollInterval.Duration
	c.OutboxBatchSize = j.OutboxBatchSize
	c.AccountNumberPrefix = j.AccountNumberPrefix
	c.DefaultCurrency = j.DefaultCurrency
	c.RedisAddr = j.RedisAddr
	c.RedisPassword = j.RedisPassword
	c.ResendLimit = j.ResendLimit
	c.ResendWindow = j.ResendWindow.Duration
	c.S3RootUser = j.S3RootUser
	c.S3RootPassword = j.S3RootPassword
	c.S3Bucket = j.S3Bucket
	c.S3Region = j.S3Region
	c.S3BaseEndpoint = j.S3BaseEndpoint
	c.SweepSchedule = j.SweepSchedule
	c.ArchiveSchedule = j.ArchiveSchedule
}

// parseJson overlays the JSON file named by -c/-config onto config. Keys
// missing from the file keep their current value. An unreadable or invalid
// file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := toJson(config)
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}
	c.apply(config)
}
