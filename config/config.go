package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	config              GlobalConfig // 全局配置文件
	once                sync.Once    // 只执行一次的代码
	mu                  sync.RWMutex // 保护热更新字段
	updateDebounceTimer *time.Timer  // 配置更新防抖动
	listeners           []func(*GlobalConfig)
	configFile          string // --config 指定的文件，为空时按默认路径查找
)

const debounceDuration = 1 * time.Second

type GlobalConfig struct {
	Server   ServerConf   `yaml:"server" mapstructure:"server"`
	DbConfig DbConf       `yaml:"db" mapstructure:"db"`       // 审计库配置
	Redis    RedisConf    `yaml:"redis" mapstructure:"redis"` // redis 配置
	Kafka    KafkaConf    `yaml:"kafka" mapstructure:"kafka"`
	Chain    ChainConf    `yaml:"chain" mapstructure:"chain"`
	Identity IdentityConf `yaml:"identity" mapstructure:"identity"`
	Voting   VotingConf   `yaml:"voting" mapstructure:"voting"`
	Log      LogConf      `yaml:"log" mapstructure:"log"`
}

type ServerConf struct {
	Addr      string `yaml:"addr" mapstructure:"addr"`             // graphql 监听地址
	PprofAddr string `yaml:"pprof_addr" mapstructure:"pprof_addr"` // 为空则不开启 pprof
	Pretty    bool   `yaml:"pretty" mapstructure:"pretty"`
}

// DbConf 为空 Host 表示不启用审计落库
type DbConf struct {
	Host        string `yaml:"host" mapstructure:"host"`                   // 主机地址
	Port        string `yaml:"port" mapstructure:"port"`                   // 端口号
	User        string `yaml:"user" mapstructure:"user"`                   // 用户名
	Password    string `yaml:"password" mapstructure:"password"`           // 密码
	Dbname      string `yaml:"dbname" mapstructure:"dbname"`               // 数据库名
	MaxIdleConn int    `yaml:"max_idle_conn" mapstructure:"max_idle_conn"` // 最大空闲连接数
	MaxOpenConn int    `yaml:"max_open_conn" mapstructure:"max_open_conn"` // 最大打开连接数
	MaxIdleTime int64  `yaml:"max_idle_time" mapstructure:"max_idle_time"` // 连接最大空闲时间(s)
}

// RedisConf 配置，Host 为空表示不启用
type RedisConf struct {
	Host     string `yaml:"rhost" mapstructure:"rhost"`       // 主机地址
	Port     int    `yaml:"rport" mapstructure:"rport"`       // 端口
	DB       int    `yaml:"rdb" mapstructure:"rdb"`           // 数据库
	PassWord string `yaml:"passwd" mapstructure:"passwd"`     // 密码
	PoolSize int    `yaml:"poolsize" mapstructure:"poolsize"` // 连接池大小
	Stream   string `yaml:"stream" mapstructure:"stream"`     // 通知写入的 stream
}

type KafkaConf struct {
	Brokers string `yaml:"brokers" mapstructure:"brokers"` // 为空不启用
	Topic   string `yaml:"topic" mapstructure:"topic"`
	GroupID string `yaml:"group_id" mapstructure:"group_id"` // rozi tail 使用的消费组
}

type ChainConf struct {
	RPCURL        string        `yaml:"rpc_url" mapstructure:"rpc_url"`
	TokenContract string        `yaml:"token_contract" mapstructure:"token_contract"`
	Symbol        string        `yaml:"symbol" mapstructure:"symbol"`
	Decimals      int32         `yaml:"decimals" mapstructure:"decimals"`
	CacheTTL      time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"` // 余额缓存时间
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

type IdentityConf struct {
	Secret      string        `yaml:"secret" mapstructure:"secret"`
	TokenTTL    time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
	UserID      string        `yaml:"user_id" mapstructure:"user_id"` // 演示用户
	Address     string        `yaml:"address" mapstructure:"address"`
	DisplayName string        `yaml:"display_name" mapstructure:"display_name"`
}

type VotingConf struct {
	SingleVote   bool `yaml:"single_vote" mapstructure:"single_vote"`     // 每人每个提案只能投一次
	RequireLogin bool `yaml:"require_login" mapstructure:"require_login"` // 投票前必须登录
}

type LogConf struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// GetGlobalConf 返回当前配置的副本
func GetGlobalConf() GlobalConfig {
	once.Do(func() {
		if err := readConf(); err != nil {
			panic(err.Error())
		}
	})
	mu.RLock()
	defer mu.RUnlock()
	return config
}

// OnReload 注册配置热更新回调
func OnReload(fn func(*GlobalConfig)) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, fn)
}

// SetDefaults 所有外部依赖默认关闭，只跑内存引擎也能启动
func SetDefaults(v *viper.Viper) {
	// 没有默认值的键 viper 不会从环境变量里取，外部依赖的开关都要先登记
	for _, key := range []string{
		"db.host", "db.user", "db.password", "db.dbname",
		"redis.rhost", "redis.passwd",
		"kafka.brokers",
		"chain.rpc_url",
	} {
		v.SetDefault(key, "")
	}
	v.SetDefault("redis.rdb", 0)
	v.SetDefault("server.addr", ":9090")
	v.SetDefault("server.pprof_addr", "")
	v.SetDefault("server.pretty", true)
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.max_idle_conn", 5)
	v.SetDefault("db.max_open_conn", 20)
	v.SetDefault("db.max_idle_time", 300)
	v.SetDefault("redis.rport", 6379)
	v.SetDefault("redis.poolsize", 10)
	v.SetDefault("redis.stream", "rozi:notifications")
	v.SetDefault("kafka.topic", "rozi.notifications")
	v.SetDefault("kafka.group_id", "rozi-tail")
	v.SetDefault("chain.token_contract", "0x932b4902AC3E40b46661881fBcA91268C81DFBf3")
	v.SetDefault("chain.symbol", "ROZI")
	v.SetDefault("chain.decimals", 18)
	v.SetDefault("chain.cache_ttl", 30*time.Second)
	v.SetDefault("chain.timeout", 10*time.Second)
	v.SetDefault("identity.secret", "rozi-dev-secret")
	v.SetDefault("identity.token_ttl", 24*time.Hour)
	v.SetDefault("identity.user_id", "demo-user")
	v.SetDefault("identity.address", "0x7a3b9c2d1e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b")
	v.SetDefault("identity.display_name", "Anonymous Ninja")
	v.SetDefault("voting.single_vote", true)
	v.SetDefault("voting.require_login", false)
	v.SetDefault("log.level", "info")
}

// Load 从 viper 实例解析配置，测试里直接用
func Load(v *viper.Viper) (GlobalConfig, error) {
	var c GlobalConfig
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// SetFile 改用指定的配置文件并立即重新加载，path 为空时回到默认查找路径
func SetFile(path string) error {
	once.Do(func() {})
	mu.Lock()
	configFile = path
	mu.Unlock()
	return readConf()
}

// BindEnv ROZI_ 前缀的环境变量覆盖配置，db.host 对应 ROZI_DB_HOST
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("ROZI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// 将配置文件中的信息全部加载到 全局配置文件中
func readConf() error {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)

	mu.RLock()
	file := configFile
	mu.RUnlock()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("../config")
	}

	if err := v.ReadInConfig(); err != nil {
		// 没有配置文件时用默认值，但显式指定的文件必须能读到
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config file err: %w", err)
		}
		log.Warn("config file not found, using defaults")
	}
	c, err := Load(v)
	if err != nil {
		return fmt.Errorf("config file unmarshal err: %w", err)
	}
	mu.Lock()
	config = c
	mu.Unlock()
	ApplyLogLevel(c.Log.Level)
	log.Debugf("config === %+v", c)

	if v.ConfigFileUsed() == "" {
		return nil
	}
	v.WatchConfig() //监听配置文件的变化
	v.OnConfigChange(func(e fsnotify.Event) {
		mu.Lock()
		defer mu.Unlock()
		if updateDebounceTimer != nil {
			updateDebounceTimer.Stop()
		}
		updateDebounceTimer = time.AfterFunc(debounceDuration, func() {
			reload(v, e.Name)
		})
	})
	return nil
}

// 只有日志级别和投票规则支持热更新
func reload(v *viper.Viper, name string) {
	if err := v.ReadInConfig(); err != nil {
		log.Errorf("reload config %s: %v", name, err)
		return
	}
	fresh, err := Load(v)
	if err != nil {
		log.Errorf("reload config %s: %v", name, err)
		return
	}

	mu.Lock()
	config.Log = fresh.Log
	config.Voting = fresh.Voting
	snapshot := config
	fns := append([]func(*GlobalConfig){}, listeners...)
	mu.Unlock()

	ApplyLogLevel(snapshot.Log.Level)
	log.Infof("config reloaded from %s: voting=%+v log=%s", name, snapshot.Voting, snapshot.Log.Level)
	for _, fn := range fns {
		fn(&snapshot)
	}
}

// ApplyLogLevel 非法级别回退到 info
func ApplyLogLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
