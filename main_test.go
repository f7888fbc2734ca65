package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"Rozi/chain"
	"Rozi/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rpcURL = "" })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["balance"])
	assert.True(t, names["tail"])
}

func TestBalanceRequiresAddress(t *testing.T) {
	_, err := execute(t, "balance")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

// 默认配置没有 rpc 节点
func TestBalanceWithoutRPC(t *testing.T) {
	_, err := execute(t, "balance", "0x7a3b9c2d1e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b")
	assert.ErrorIs(t, err, chain.ErrNotConfigured)
}

func TestTailWithoutBrokers(t *testing.T) {
	_, err := execute(t, "tail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka.brokers")
}

// --config 指定的文件优先于默认查找路径
func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rozi.yml")
	require.NoError(t, os.WriteFile(path, []byte("chain:\n  rpc_url: \"ftp://127.0.0.1:1\"\n"), 0o600))
	t.Cleanup(func() {
		cfgFile = ""
		require.NoError(t, config.SetFile(""))
	})

	_, err := execute(t, "--config", path, "balance", "0x7a3b9c2d1e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b")
	require.Error(t, err)
	assert.NotErrorIs(t, err, chain.ErrNotConfigured)
	assert.Contains(t, err.Error(), "ftp://127.0.0.1:1")
	assert.Equal(t, "ftp://127.0.0.1:1", config.GetGlobalConf().Chain.RPCURL)
}

func TestConfigFlagMissingFile(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		require.NoError(t, config.SetFile(""))
	})
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yml"), "balance", "0x7a3b9c2d1e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
