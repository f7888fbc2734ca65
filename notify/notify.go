// Package notify 投票、借贷结果的通知出口。引擎只负责产生通知，展示由前端完成。
package notify

import (
	"context"
	"sync"
	"time"

	"Rozi/model"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Sink 通知接收方
type Sink interface {
	Notify(ctx context.Context, n model.Notification) error
}

// New 生成带事件 ID 和时间戳的通知
func New(kind model.NotificationKind, title, description string) model.Notification {
	return model.Notification{
		EventID:     uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: description,
		OccurredAt:  time.Now().UTC(),
	}
}

// Multi 依次投递到所有 sink。单个 sink 出错只记日志，不影响业务结果
type Multi []Sink

func (m Multi) Notify(ctx context.Context, n model.Notification) error {
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Notify(ctx, n); err != nil {
			log.WithFields(log.Fields{
				"event": n.EventID,
				"kind":  n.Kind,
			}).Warnf("notify %T: %v", s, err)
		}
	}
	return nil
}

// LogSink 写到 logrus
type LogSink struct {
	Logger log.FieldLogger
}

func (l LogSink) Notify(_ context.Context, n model.Notification) error {
	logger := l.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	fields := log.Fields{"event": n.EventID, "kind": n.Kind}
	if n.UserID != "" {
		fields["user"] = n.UserID
	}
	if n.SubjectID != 0 {
		fields["subject"] = n.SubjectID
	}
	logger.WithFields(fields).Infof("%s: %s", n.Title, n.Description)
	return nil
}

// Recorder 在内存里保留最近的通知，供 graphql 查询和测试使用
type Recorder struct {
	mu    sync.Mutex
	limit int
	items []model.Notification
}

// NewRecorder limit <= 0 时默认保留 100 条
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 100
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) Notify(_ context.Context, n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	if over := len(r.items) - r.limit; over > 0 {
		r.items = append(r.items[:0], r.items[over:]...)
	}
	return nil
}

// Recent 最新的在前，n <= 0 返回全部
func (r *Recorder) Recent(n int) []model.Notification {
	return r.recent(n, func(model.Notification) bool { return true })
}

// RecentFor 只返回属于 userID 的通知
func (r *Recorder) RecentFor(userID string, n int) []model.Notification {
	return r.recent(n, func(item model.Notification) bool { return item.UserID == userID })
}

func (r *Recorder) recent(n int, keep func(model.Notification) bool) []model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 || n > len(r.items) {
		n = len(r.items)
	}
	out := make([]model.Notification, 0, n)
	for i := len(r.items) - 1; i >= 0 && len(out) < n; i-- {
		if keep(r.items[i]) {
			out = append(out, r.items[i])
		}
	}
	return out
}
