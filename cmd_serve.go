package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"sync/atomic"
	"time"

	"Rozi/catalog"
	"Rozi/chain"
	"Rozi/config"
	"Rozi/control"
	"Rozi/db"
	"Rozi/graphql"
	"Rozi/identity"
	"Rozi/notify"
	"Rozi/utils"
	"github.com/go-redis/redis/v8"
	"github.com/graphql-go/handler"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// serveCmd 启动 GraphQL 服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the GraphQL API",
	Long: `Build the in-memory store from the seed catalog, wire the configured
notification sinks (log, redis stream, mysql audit, kafka) and serve
GraphQL at /graphql until SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	conf := config.GetGlobalConf()
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	shutdown := utils.NewShutdown(15 * time.Second)
	rec := notify.NewRecorder(200)
	sinks, rdb, err := buildSinks(ctx, conf, rec, shutdown)
	if err != nil {
		shutdown.Run()
		return err
	}

	var balance graphql.BalanceLookup
	client, closeChain, err := chain.Dial(ctx, conf.Chain, rdb)
	switch {
	case errors.Is(err, chain.ErrNotConfigured):
		log.Info("chain rpc not configured, balance query disabled")
	case err != nil:
		shutdown.Run()
		return err
	default:
		balance = client
		shutdown.Add("chain", func(context.Context) error { closeChain(); return nil })
	}

	store := db.NewStore(catalog.Load())
	voting := control.NewVotingEngine(store, sinks, conf.Voting.SingleVote)
	var requireLogin atomic.Bool
	requireLogin.Store(conf.Voting.RequireLogin)
	config.OnReload(func(c *config.GlobalConfig) {
		voting.SetSingleVote(c.Voting.SingleVote)
		requireLogin.Store(c.Voting.RequireLogin)
	})

	idp := identity.NewTokenProvider(conf.Identity)
	schema, err := graphql.NewGraphQLSchema(graphql.Deps{
		Store:         store,
		Voting:        voting,
		Lending:       control.NewLendingEngine(store, sinks),
		Activity:      control.NewActivityGenerator(rand.NewSource(time.Now().UnixNano())),
		Identity:      idp,
		Notifications: rec,
		Balance:       balance,
		RequireLogin:  requireLogin.Load,
	})
	if err != nil {
		shutdown.Run()
		return fmt.Errorf("failed to create new schema, error: %w", err)
	}

	if conf.Server.PprofAddr != "" {
		go func() {
			runtime.SetBlockProfileRate(1)     // 开启对阻塞操作的跟踪，block
			runtime.SetMutexProfileFraction(1) // 开启对锁调用的跟踪，mutex
			log.Infof("pprof is running on %s", conf.Server.PprofAddr)
			if err := http.ListenAndServe(conf.Server.PprofAddr, nil); err != nil {
				log.Warnf("pprof stopped: %v", err)
			}
		}()
	}

	// handler会解析请求，执行对应的GraphQL操作，并返回结果
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   conf.Server.Pretty,
		GraphiQL: true,
	})
	mux := http.NewServeMux()
	mux.Handle("/graphql", idp.Middleware(h))
	srv := &http.Server{
		Addr:              conf.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	shutdown.Add("http", srv.Shutdown)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Now server is running on %s", conf.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			cancel()
		}
	}()

	shutdown.Wait(ctx)
	select {
	case err := <-errCh:
		return fmt.Errorf("serve %s: %w", conf.Server.Addr, err)
	default:
		return nil
	}
}

// buildSinks 日志和内存记录总是开启，其余按配置启用
func buildSinks(ctx context.Context, conf config.GlobalConfig, rec *notify.Recorder, shutdown *utils.Shutdown) (notify.Multi, *redis.Client, error) {
	sinks := notify.Multi{notify.LogSink{Logger: log.StandardLogger()}, rec}

	rdb, err := db.NewRedis(ctx, conf.Redis)
	if err != nil {
		return nil, nil, err
	}
	if rdb != nil {
		shutdown.Add("redis", func(context.Context) error { return rdb.Close() })
		sinks = append(sinks, notify.RedisSink{Client: rdb, Stream: conf.Redis.Stream, MaxLen: 10000})
	}

	gdb, err := db.OpenAudit(conf.DbConfig)
	if err != nil {
		return nil, rdb, err
	}
	if gdb != nil {
		shutdown.Add("mysql", func(context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
		sinks = append(sinks, notify.AuditSink{DB: gdb})
	}

	if conf.Kafka.Brokers != "" {
		k, err := notify.NewKafkaSink(conf.Kafka.Brokers, conf.Kafka.Topic)
		if err != nil {
			return nil, rdb, err
		}
		shutdown.Add("kafka", func(context.Context) error { k.Close(); return nil })
		sinks = append(sinks, k)
	}
	return sinks, rdb, nil
}
