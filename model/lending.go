package model

import "time"

// LendingRequest 借款请求
type LendingRequest struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Amount     int       `json:"amount"`    // 目标金额，不可变
	Fulfilled  int       `json:"fulfilled"` // 已筹金额，0 <= Fulfilled <= Amount
	Deadline   time.Time `json:"deadline"`
	Requester  string    `json:"requester"`
	TrustScore int       `json:"trustScore"`
}

// BorrowRequest 用户提交的借款申请，只做校验和通知，不进入借贷目录
type BorrowRequest struct {
	Title    string    `json:"title"`
	Amount   int       `json:"amount"`
	Deadline time.Time `json:"deadline"`
}
