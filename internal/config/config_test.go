package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, 3, cfg.MinGroupSize)
	assert.Equal(t, 1.0, cfg.CreateRate)
	assert.Equal(t, 5, cfg.CreateBurst)
	assert.False(t, cfg.Lambda)
}

func TestOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"KIVA_ADDR":                ":3000",
		"KIVA_DB_DRIVER":           "SQLite",
		"KIVA_DB_DSN":              "kiva.db",
		"KIVA_MIN_GROUP_SIZE":      "4",
		"KIVA_CREATE_RATE":         "0.5",
		"KIVA_CREATE_BURST":        "2",
		"AWS_LAMBDA_FUNCTION_NAME": "kiva",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "kiva.db", cfg.DBDSN)
	assert.Equal(t, 4, cfg.MinGroupSize)
	assert.Equal(t, 0.5, cfg.CreateRate)
	assert.Equal(t, 2, cfg.CreateBurst)
	assert.True(t, cfg.Lambda)
}

func TestInvalidValues(t *testing.T) {
	cases := []map[string]string{
		{"KIVA_DB_DRIVER": "mongo"},
		{"KIVA_DB_DRIVER": "postgres"},
		{"KIVA_MIN_GROUP_SIZE": "0"},
		{"KIVA_MIN_GROUP_SIZE": "three"},
		{"KIVA_CREATE_RATE": "-1"},
		{"KIVA_CREATE_BURST": "0"},
	}
	for _, c := range cases {
		_, err := FromEnv(env(c))
		assert.Error(t, err, c)
	}
}
