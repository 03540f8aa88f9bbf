package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "0123456789abcdef0123"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
logger:
  engine: zap
  level: debug
storage:
  driver: memory
redis:
  enabled: true
  addr: "redis:6379"
  ttl: 30s
kafka:
  enabled: true
  brokers: ["kafka:9092"]
auth:
  jwt_secret: "`+testSecret+`"
booking:
  release_on_cancel: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, logger.Engine("zap"), cfg.Logger.LogEngine())
	assert.Equal(t, logger.DebugLevel, cfg.Logger.LogLevel())
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "booking-events", cfg.Kafka.Topic)
	assert.False(t, cfg.Booking.ReleaseOnCancel)
	assert.Equal(t, time.Minute, cfg.Scheduler.Interval)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_HOST", "db")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "host=db port=5432 user=postgres password=postgres dbname=staybooker sslmode=disable", cfg.Postgres.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Booking.ReleaseOnCancel)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, logger.Engine("slog"), cfg.Logger.LogEngine())
}

func TestLoad_EnvOnlyInvalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing secret": `
logger:
  level: info
`,
		"short secret": `
auth:
  jwt_secret: "short"
`,
		"kafka without brokers": `
kafka:
  enabled: true
auth:
  jwt_secret: "` + testSecret + `"
`,
		"unknown log engine": `
logger:
  engine: glog
auth:
  jwt_secret: "` + testSecret + `"
`,
		"unknown driver": `
storage:
  driver: sqlite
auth:
  jwt_secret: "` + testSecret + `"
`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
		})
	}
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.WarnLevel, LoggerConfig{Level: "warn"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "info"}.LogLevel())
}
