package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDefaults(t *testing.T, c *Config) {
	t.Helper()
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "accessSecret", c.AccessTokenSecret)
	assert.Equal(t, "refreshSecret", c.RefreshTokenSecret)
	assert.Equal(t, 2*time.Hour, c.AccessTokenValidityDuration)
	assert.Equal(t, 30*24*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, 20*time.Minute, c.VerificationTokenValidityDuration)
	assert.Equal(t, time.Hour, c.ResetTokenValidityDuration)
	assert.Equal(t, 3, c.PinMaxAttempts)
	assert.Equal(t, 5*time.Minute, c.PinLockoutDuration)
	assert.Equal(t, "https://pegasus.com", c.MailLinkBaseURL)
	assert.Equal(t, "100", c.AccountNumberPrefix)
	assert.Equal(t, "", c.RedisAddr)
	assert.False(t, c.ArchiveEnabled())
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assertDefaults(t, &c)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assertDefaults(t, c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc":   "json:1",
		"log_level":            "debug",
		"resend_limit":         7,
		"pin_lockout_duration": "10m",
	})
	t.Setenv("PEGASUS_GRPC_ADDR", "env:2")
	t.Setenv("PEGASUS_RESEND_LIMIT", "9")

	os.Args = []string{"testbin", "-c", path, "-a", "flag:3"}

	c := LoadConfig()

	assert.Equal(t, "flag:3", c.EndpointAddrGRPC, "flags win")
	assert.Equal(t, 9, c.ResendLimit, "env beats json")
	assert.Equal(t, "debug", c.LogLevel, "json beats defaults")
	assert.Equal(t, 10*time.Minute, c.PinLockoutDuration)
	assert.Equal(t, 2*time.Hour, c.AccessTokenValidityDuration, "untouched keys keep defaults")
}
