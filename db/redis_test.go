package db

import (
	"context"
	"strconv"
	"testing"

	"Rozi/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisDisabled(t *testing.T) {
	cli, err := NewRedis(context.Background(), config.RedisConf{})
	assert.NoError(t, err)
	assert.Nil(t, cli)
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cli, err := NewRedis(context.Background(), config.RedisConf{Host: mr.Host(), Port: port, PoolSize: 2})
	require.NoError(t, err)
	defer cli.Close()
	assert.NoError(t, cli.Set(context.Background(), "k", "v", 0).Err())
}

func TestOpenAuditDisabled(t *testing.T) {
	gdb, err := OpenAudit(config.DbConf{})
	assert.NoError(t, err)
	assert.Nil(t, gdb)
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DbConf{User: "root", Password: "pw", Host: "127.0.0.1", Port: "3306", Dbname: "rozi"})
	assert.Equal(t, "root:pw@(127.0.0.1:3306)/rozi?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}
