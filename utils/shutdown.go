package utils

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

type closer struct {
	name string
	fn   func(ctx context.Context) error
}

// Shutdown 收尾工作：收到 SIGINT/SIGTERM 后按注册的逆序依次关闭
type Shutdown struct {
	mu      sync.Mutex
	closers []closer
	timeout time.Duration
}

// NewShutdown timeout 是全部收尾工作的总时限
func NewShutdown(timeout time.Duration) *Shutdown {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Shutdown{timeout: timeout}
}

// Add 注册一个收尾动作，后注册的先执行
func (s *Shutdown) Add(name string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closers = append(s.closers, closer{name: name, fn: fn})
}

// Wait 阻塞到收到退出信号或 ctx 结束，然后执行收尾
func (s *Shutdown) Wait(ctx context.Context) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		log.Infof("received %s, shutting down", sig)
	case <-ctx.Done():
		log.Info("context done, shutting down")
	}
	s.Run()
}

// Run 执行所有收尾动作，单个失败只记日志
func (s *Shutdown) Run() {
	s.mu.Lock()
	closers := s.closers
	s.closers = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	for i := len(closers) - 1; i >= 0; i-- {
		c := closers[i]
		if err := c.fn(ctx); err != nil {
			log.Errorf("close %s failed, err: %v", c.name, err)
			continue
		}
		log.Debugf("closed %s", c.name)
	}
}
