package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Empty(t, c.DbConfig.Host, "audit db is off by default")
	assert.Empty(t, c.Redis.Host)
	assert.Empty(t, c.Kafka.Brokers)
	assert.True(t, c.Voting.SingleVote)
	assert.False(t, c.Voting.RequireLogin)
	assert.Equal(t, int32(18), c.Chain.Decimals)
	assert.Equal(t, 30*time.Second, c.Chain.CacheTTL)
	assert.Equal(t, 24*time.Hour, c.Identity.TokenTTL)
}

func TestLoadYAML(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yml")
	err := v.ReadConfig(strings.NewReader(`
redis:
  rhost: "127.0.0.1"
  rport: 16379
voting:
  single_vote: false
chain:
  cache_ttl: 5s
`))
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", c.Redis.Host)
	assert.Equal(t, 16379, c.Redis.Port)
	assert.Equal(t, "rozi:notifications", c.Redis.Stream)
	assert.False(t, c.Voting.SingleVote)
	assert.Equal(t, 5*time.Second, c.Chain.CacheTTL)
}

func TestApplyLogLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	ApplyLogLevel("debug")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	ApplyLogLevel("nonsense")
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

// 只用环境变量部署时也能打开外部依赖
func TestEnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("ROZI_KAFKA_BROKERS", "127.0.0.1:9092")
	t.Setenv("ROZI_DB_HOST", "db.internal")
	t.Setenv("ROZI_DB_PASSWORD", "s3cret")
	t.Setenv("ROZI_REDIS_RHOST", "cache.internal")
	t.Setenv("ROZI_CHAIN_RPC_URL", "https://rpc.example")

	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9092", c.Kafka.Brokers)
	assert.Equal(t, "db.internal", c.DbConfig.Host)
	assert.Equal(t, "s3cret", c.DbConfig.Password)
	assert.Equal(t, "cache.internal", c.Redis.Host)
	assert.Equal(t, "https://rpc.example", c.Chain.RPCURL)
}

func TestSetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rozi.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":7070\"\nkafka:\n  brokers: \"k1:9092\"\n"), 0o600))
	t.Cleanup(func() { require.NoError(t, SetFile("")) })

	require.NoError(t, SetFile(path))
	c := GetGlobalConf()
	assert.Equal(t, ":7070", c.Server.Addr)
	assert.Equal(t, "k1:9092", c.Kafka.Brokers)
	assert.True(t, c.Voting.SingleVote, "defaults still apply")

	assert.Error(t, SetFile(filepath.Join(t.TempDir(), "missing.yml")))
}
