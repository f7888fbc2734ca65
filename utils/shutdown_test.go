package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

// 后注册的先关闭，某一步失败不影响后面的步骤
func TestShutdownOrder(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	var order []string
	s := NewShutdown(time.Second)
	s.Add("db", func(context.Context) error { order = append(order, "db"); return nil })
	s.Add("redis", func(context.Context) error { order = append(order, "redis"); return errors.New("boom") })
	s.Add("http", func(context.Context) error { order = append(order, "http"); return nil })

	s.Run()
	assert.Equal(t, []string{"http", "redis", "db"}, order)
	assert.Contains(t, hook.LastEntry().Message, "close redis failed")

	// 第二次执行不会重复关闭
	s.Run()
	assert.Len(t, order, 3)
}

func TestShutdownWaitContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewShutdown(0)
	done := make(chan struct{})
	s.Add("marker", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		close(done)
		return nil
	})

	go s.Wait(ctx)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shutdown did not run")
	}
}
