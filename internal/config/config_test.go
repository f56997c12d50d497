package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{
		KeyAppName, KeyPort, KeyDatabaseDSN, KeyLogLevel, KeyLogFormat,
		KeyDeskAPIURL, KeyDeskTimeout, KeyDeskLogFile,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pet-store-admin", cfg.AppName)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Equal(t, LogConfig{Level: "info", Format: "text"}, cfg.Log)
	assert.Equal(t, DeskConfig{APIURL: "http://localhost:8080", Timeout: 10 * time.Second, LogFile: "petdesk.log"}, cfg.Desk)
}

func TestLoad_FromEnvAndDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("PETDESK_API_URL=http://pets.local:9000\nLOG_FORMAT=json\n"), 0o600))
	t.Setenv(KeyPort, "9090")
	t.Setenv(KeyDeskTimeout, "nonsense")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "http://pets.local:9000", cfg.Desk.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Desk.Timeout, "invalid duration falls back")
}

func TestLoadWith_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyDeskAPIURL, "http://from-env")

	fs := pflag.NewFlagSet("petdesk", pflag.ContinueOnError)
	fs.String("api-url", "", "")
	fs.Duration("timeout", 0, "")
	require.NoError(t, fs.Parse([]string{"--api-url", "http://from-flag", "--timeout", "3s"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag(KeyDeskAPIURL, fs.Lookup("api-url")))
	require.NoError(t, v.BindPFlag(KeyDeskTimeout, fs.Lookup("timeout")))

	cfg, err := LoadWith(v)
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag", cfg.Desk.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Desk.Timeout)
}

func TestLoad_RejectsBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyPort, "70000")

	_, err := Load()
	assert.Error(t, err)
}
