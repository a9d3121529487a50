package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_TIMEOUT", "DB_DRIVER", "DB_HOST", "CRON_ENABLED", "ALLOWED_ORIGINS", "CHAT_RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	env, err := Get()
	require.NoError(t, err)
	assert.Equal(t, 8080, env.PORT)
	assert.Equal(t, 5*time.Second, env.STORE_TIMEOUT)
	assert.Equal(t, "pgx", env.DB_DRIVER)
	assert.Equal(t, "localhost", env.DB_HOST)
	assert.True(t, env.CRON_ENABLED)
	assert.Equal(t, 20, env.CHAT_RATE_LIMIT)
	assert.Equal(t, []string{"http://localhost:3000"}, env.AllowedOrigins())
}

func TestGet_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("DB_DRIVER", "pq")
	t.Setenv("CRON_ENABLED", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	env, err := Get()
	require.NoError(t, err)
	assert.Equal(t, 9000, env.PORT)
	assert.Equal(t, 750*time.Millisecond, env.STORE_TIMEOUT)
	assert.Equal(t, "pq", env.DB_DRIVER)
	assert.False(t, env.CRON_ENABLED)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.AllowedOrigins())
}
