package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Rozi/model"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	log "github.com/sirupsen/logrus"
)

// Tail 消费通知 topic，直到 ctx 结束
// 解析失败的消息只记日志，不中断消费
func Tail(ctx context.Context, brokers, groupID, topic string, handle func(model.Notification)) error {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"group.id":          groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}
	defer c.Close()

	if err := c.SubscribeTopics([]string{topic}, nil); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}

	for ctx.Err() == nil {
		msg, err := c.ReadMessage(500 * time.Millisecond)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
				continue
			}
			log.Warnf("consumer error: %v (%v)", err, msg)
			continue
		}
		n, err := DecodeKafka(msg)
		if err != nil {
			log.Warnf("skip message on %s: %v", msg.TopicPartition, err)
			continue
		}
		handle(n)
	}
	return nil
}

// DecodeKafka EncodeKafka 的逆操作
func DecodeKafka(msg *kafka.Message) (model.Notification, error) {
	var n model.Notification
	if err := json.Unmarshal(msg.Value, &n); err != nil {
		return n, fmt.Errorf("decode notification: %w", err)
	}
	if n.Kind == "" {
		n.Kind = model.NotificationKind(msg.Key)
	}
	return n, nil
}
