package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN, empty for the in-memory store
//	-s string   access token secret
//	-rs string  refresh token secret
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-l string   log level
//	-m string   RabbitMQ URL
//	-k string   Redis address for the resend throttle
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Arguments other than these, -c included, are dropped with flagx.Owned.
func parseFlags(config *Config) {
	args := flagx.Owned(os.Args[1:], "a", "d", "s", "rs", "t", "r", "l", "m", "k", "u", "p", "b", "g", "e")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AccessTokenSecret, "s", config.AccessTokenSecret, "access token secret")
	fs.StringVar(&config.RefreshTokenSecret, "rs", config.RefreshTokenSecret, "refresh token secret")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.RabbitMQURL, "m", config.RabbitMQURL, "RabbitMQ URL")
	fs.StringVar(&config.RedisAddr, "k", config.RedisAddr, "Redis address")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 archive bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
