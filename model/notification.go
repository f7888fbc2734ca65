package model

import (
	"time"

	"gorm.io/gorm"
)

// NotificationKind 通知类型
type NotificationKind string

const (
	KindVoteRecorded    NotificationKind = "vote_recorded"
	KindVoteFailed      NotificationKind = "vote_failed"
	KindLendingSuccess  NotificationKind = "lending_success"
	KindLendingFailed   NotificationKind = "lending_failed"
	KindRequestCreated  NotificationKind = "request_created"
	KindRequestRejected NotificationKind = "request_rejected"
)

// Notification 操作完成或失败后给用户的提示，审计落库时也用这个结构
type Notification struct {
	gorm.Model  `json:"-"`
	EventID     string           `gorm:"uniqueIndex;size:36" json:"id"`
	Kind        NotificationKind `gorm:"size:32;index" json:"kind"`
	Title       string           `gorm:"size:128" json:"title"`
	Description string           `gorm:"size:512" json:"description"`
	UserID      string           `gorm:"size:64;index" json:"userId,omitempty"`
	Choice      string           `gorm:"size:8" json:"choice,omitempty"`
	VotingPower int              `json:"votingPower,omitempty"`
	Amount      int              `json:"amount,omitempty"`
	Reward      int              `json:"reward,omitempty"`
	SubjectID   int              `json:"subjectId,omitempty"` // 提案或借款请求 ID
	OccurredAt  time.Time        `json:"occurredAt"`
}
