package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable the server reads.
const EnvPrefix = "PEGASUS_"

// envFile is loaded before reading the environment. Variables already set
// in the process environment win over the file.
var envFile = ".env"

// parseEnv overlays PEGASUS_* environment variables onto config. A malformed
// number or duration panics, like an invalid JSON file does.
func parseEnv(config *Config) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	envString("GRPC_ADDR", &config.EndpointAddrGRPC)
	envString("DATABASE_DSN", &config.DatabaseDSN)
	envString("LOG_LEVEL", &config.LogLevel)
	envList("TRUSTED_PROXIES", &config.TrustedProxies)

	envString("ACCESS_TOKEN_SECRET", &config.AccessTokenSecret)
	envString("REFRESH_TOKEN_SECRET", &config.RefreshTokenSecret)
	envDuration("ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration)
	envDuration("REFRESH_TOKEN_TTL", &config.RefreshTokenValidityDuration)
	envDuration("VERIFICATION_TOKEN_TTL", &config.VerificationTokenValidityDuration)
	envDuration("RESET_TOKEN_TTL", &config.ResetTokenValidityDuration)
	envInt("BCRYPT_COST", &config.BcryptCost)

	envInt("PIN_MAX_ATTEMPTS", &config.PinMaxAttempts)
	envDuration("PIN_LOCKOUT", &config.PinLockoutDuration)

	envString("MAIL_LINK_BASE_URL", &config.MailLinkBaseURL)

	envString("RABBITMQ_URL", &config.RabbitMQURL)
	envString("EVENTS_EXCHANGE", &config.EventsExchange)
	envString("NOTIFICATIONS_EXCHANGE", &config.NotificationsExchange)
	envString("PROVISIONING_QUEUE", &config.ProvisioningQueue)
	envDuration("OUTBOX_POLL_INTERVAL", &config.OutboxPollInterval)
	envInt("OUTBOX_BATCH_SIZE", &config.OutboxBatchSize)

	envString("ACCOUNT_PREFIX", &config.AccountNumberPrefix)
	envString("DEFAULT_CURRENCY", &config.DefaultCurrency)

	envString("REDIS_ADDR", &config.RedisAddr)
	envString("REDIS_PASSWORD", &config.RedisPassword)
	envInt("RESEND_LIMIT", &config.ResendLimit)
	envDuration("RESEND_WINDOW", &config.ResendWindow)

	envString("S3_ROOT_USER", &config.S3RootUser)
	envString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	envString("S3_BUCKET", &config.S3Bucket)
	envString("S3_REGION", &config.S3Region)
	envString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)

	envString("SWEEP_SCHEDULE", &config.SweepSchedule)
	envString("ARCHIVE_SCHEDULE", &config.ArchiveSchedule)
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		*dst = v
	}
}

// envList splits a comma separated value, dropping empty items.
func envList(name string, dst *[]string) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*dst = out
}

func envInt(name string, dst *int) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
	}
	*dst = n
}

func envDuration(name string, dst *time.Duration) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
	}
	*dst = d
}
