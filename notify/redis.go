package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"Rozi/model"
	"github.com/go-redis/redis/v8"
)

// RedisSink 把通知追加到 redis stream，前端或其他服务可以 XREAD 订阅
type RedisSink struct {
	Client *redis.Client
	Stream string
	MaxLen int64 // 0 表示不裁剪
}

func (r RedisSink) Notify(ctx context.Context, n model.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	err = r.Client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.Stream,
		MaxLen: r.MaxLen,
		Approx: r.MaxLen > 0,
		Values: map[string]interface{}{
			"id":      n.EventID,
			"kind":    string(n.Kind),
			"title":   n.Title,
			"payload": string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", r.Stream, err)
	}
	return nil
}
