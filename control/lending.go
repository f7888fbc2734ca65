package control

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Rozi/db"
	"Rozi/model"
	"Rozi/notify"
)

// LendingStore 借贷引擎需要的仓库能力
type LendingStore interface {
	LendingRequests() []model.LendingRequest
	LendingRequest(id int) (model.LendingRequest, error)
	UpdateLendingRequest(id int, fn func(r *model.LendingRequest) error) (model.LendingRequest, error)
}

// Allocation 一次出借的结果
type Allocation struct {
	Request model.LendingRequest
	Reward  int
}

// LendingEngine 借贷撮合
type LendingEngine struct {
	store LendingStore
	sink  notify.Sink
	now   func() time.Time
}

func NewLendingEngine(store LendingStore, sink notify.Sink) *LendingEngine {
	return &LendingEngine{store: store, sink: sink, now: time.Now}
}

// Allocate 给借款请求出借 amount。要求 0 < amount <= 剩余额度，
// 否则返回 *ValidationError 且请求不变。
func (e *LendingEngine) Allocate(ctx context.Context, lender string, requestID, amount int) (Allocation, error) {
	r, err := e.store.UpdateLendingRequest(requestID, func(r *model.LendingRequest) error {
		if amount <= 0 {
			return invalid("amount", "must be positive")
		}
		if rem := Remaining(*r); amount > rem {
			return invalid("amount", fmt.Sprintf("%d exceeds remaining capacity %d", amount, rem))
		}
		r.Fulfilled += amount
		return nil
	})
	if errors.Is(err, db.ErrNoRecord) {
		err = &ValidationError{Field: "requestId", Reason: "unknown request", Err: notFound(err)}
	}
	if err != nil {
		n := notify.New(model.KindLendingFailed, "Lending Failed", "Invalid lending amount. Please try again.")
		n.UserID = lender
		n.SubjectID = requestID
		n.Amount = amount
		e.emit(ctx, n)
		return Allocation{Request: r}, err
	}

	reward := Reward(amount)
	n := notify.New(model.KindLendingSuccess, "Lending Successful",
		fmt.Sprintf("You have successfully lent ₹%d and received %d $ROZI coins.", amount, reward))
	n.UserID = lender
	n.SubjectID = r.ID
	n.Amount = amount
	n.Reward = reward
	e.emit(ctx, n)
	return Allocation{Request: r, Reward: reward}, nil
}

// SubmitBorrowRequest 校验借款申请并发出通知，申请不会加入借贷目录
func (e *LendingEngine) SubmitBorrowRequest(ctx context.Context, borrower string, req model.BorrowRequest) error {
	err := e.validateBorrow(req)
	if err != nil {
		n := notify.New(model.KindRequestRejected, "Request Rejected", err.Error())
		n.UserID = borrower
		n.Amount = req.Amount
		e.emit(ctx, n)
		return err
	}
	n := notify.New(model.KindRequestCreated, "Request Created", "Your borrowing request has been successfully created.")
	n.UserID = borrower
	n.Amount = req.Amount
	e.emit(ctx, n)
	return nil
}

func (e *LendingEngine) validateBorrow(req model.BorrowRequest) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return invalid("title", "must not be empty")
	case req.Amount <= 0:
		return invalid("amount", "must be positive")
	case req.Deadline.IsZero():
		return invalid("deadline", "is required")
	case req.Deadline.Before(startOfDay(e.now())):
		return invalid("deadline", "must not be in the past")
	}
	return nil
}

// 截止日期只精确到天，今天到期也算有效
func startOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.UTC).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (e *LendingEngine) LendingRequest(id int) (model.LendingRequest, error) {
	r, err := e.store.LendingRequest(id)
	return r, notFound(err)
}

func (e *LendingEngine) LendingRequests() []model.LendingRequest { return e.store.LendingRequests() }

// PreviewReward 输入金额时实时展示的奖励
func PreviewReward(amount int) int { return Reward(amount) }

// Remaining 剩余可出借额度
func Remaining(r model.LendingRequest) int {
	if rem := r.Amount - r.Fulfilled; rem > 0 {
		return rem
	}
	return 0
}

// PercentFunded 已筹比例，限制在 [0,100]
func PercentFunded(r model.LendingRequest) int {
	p := Percent(r.Fulfilled, r.Amount)
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

func (e *LendingEngine) emit(ctx context.Context, n model.Notification) {
	if e.sink != nil {
		e.sink.Notify(ctx, n)
	}
}
