package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"Rozi/model"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	log "github.com/sirupsen/logrus"
)

// KafkaSink 把通知发到 kafka topic，key 为事件类型
type KafkaSink struct {
	producer *kafka.Producer
	topic    string
}

// NewKafkaSink 初始化 Kafka 生产者
func NewKafkaSink(brokers, topic string) (*KafkaSink, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": brokers})
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	k := &KafkaSink{producer: p, topic: topic}
	go k.drainEvents()
	return k, nil
}

func (k *KafkaSink) Notify(_ context.Context, n model.Notification) error {
	msg, err := EncodeKafka(k.topic, n)
	if err != nil {
		return err
	}
	return k.producer.Produce(msg, nil)
}

// Close 等待所有消息发送完成
func (k *KafkaSink) Close() {
	k.producer.Flush(15 * 1000)
	k.producer.Close()
}

// 异步投递结果只记日志
func (k *KafkaSink) drainEvents() {
	for e := range k.producer.Events() {
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			log.Warnf("kafka delivery failed: %v", m.TopicPartition.Error)
		}
	}
}

// EncodeKafka 构造消息
func EncodeKafka(topic string, n model.Notification) (*kafka.Message, error) {
	value, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(n.Kind),
		Value:          value,
	}, nil
}
