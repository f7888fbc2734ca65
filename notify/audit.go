package notify

import (
	"context"
	"fmt"

	"Rozi/model"
	"gorm.io/gorm"
)

// AuditSink 每条通知落一行 notifications 表，只是审计，引擎状态不从这里恢复
type AuditSink struct {
	DB *gorm.DB
}

func (a AuditSink) Notify(ctx context.Context, n model.Notification) error {
	if err := a.DB.WithContext(ctx).Create(&n).Error; err != nil {
		return fmt.Errorf("audit notification %s: %w", n.EventID, err)
	}
	return nil
}

// ByUser 按时间倒序查某个用户的通知
func (a AuditSink) ByUser(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	var out []model.Notification
	err := a.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
