package internal

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable read by Config for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HOST", "PORT", "ADMIN_PORT", "GRPC_HEALTH_PORT", "LOG_LEVEL",
		"SINK_TIMEOUT", "IDLE_TIMEOUT", "MAX_LINE_LENGTH", "MAX_NICKNAME_LENGTH",
		"CENSORED_WORDS_DIR", "CHARACTER_REPLACEMENT", "HEARTBEAT_INTERVAL", "RESTART_INTERVAL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	clearEnv(t)

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("0.0.0.0", config.Host)
	req.Equal(12345, config.Port)
	req.Equal(0, config.AdminPort)
	req.Equal("INFO", config.LogLevel)
	req.Equal(2*time.Second, config.SinkTimeout)
	req.Equal(time.Duration(0), config.IdleTimeout)
	req.Equal(4096, config.MaxLineLength)
	req.Equal(32, config.MaxNicknameLength)
	req.Equal("*", config.CharReplacement)
	req.Equal(30*time.Second, config.HeartbeatInterval)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.Equal("0.0.0.0:12345", config.Address(config.Port))
}

func TestLoadConfig_Overrides(t *testing.T) {
	req := require.New(t)
	clearEnv(t)
	t.Setenv("PORT", "4000")
	t.Setenv("SINK_TIMEOUT", "500ms")
	t.Setenv("CHARACTER_REPLACEMENT", "#")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(4000, config.Port)
	req.Equal(500*time.Millisecond, config.SinkTimeout)
	req.Equal("#", config.CharReplacement)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host:              "127.0.0.1",
		Port:              12345,
		LogLevel:          "DEBUG",
		SinkTimeout:       time.Second,
		MaxLineLength:     4096,
		MaxNicknameLength: 32,
		CharReplacement:   "*",
		HeartbeatInterval: time.Second,
		RestartInterval:   time.Second,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port out of range", func(c *Config) { c.Port = 70000 }},
		{"zero sink timeout", func(c *Config) { c.SinkTimeout = 0 }},
		{"tiny line length", func(c *Config) { c.MaxLineLength = 4 }},
		{"empty log level", func(c *Config) { c.LogLevel = "" }},
		{"two replacement characters", func(c *Config) { c.CharReplacement = "**" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			require.Error(t, config.Validate())
		})
	}
}

func TestCharacterRune(t *testing.T) {
	r, err := CharacterRune("€")
	require.NoError(t, err)
	require.Equal(t, '€', r)

	_, err = CharacterRune("")
	require.Error(t, err)
}
