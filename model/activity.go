package model

import "time"

// DailyActivity 某一天的接单情况
type DailyActivity struct {
	Date     string `json:"date"` // yyyy-mm-dd
	Gigs     int    `json:"gigs"`
	Earnings int    `json:"earnings"`
}

// MonthActivity 某个月的汇总
type MonthActivity struct {
	Year          int             `json:"year"`
	Month         time.Month      `json:"month"`
	TotalGigs     int             `json:"totalGigs"`
	TotalEarnings int             `json:"totalEarnings"`
	Days          []DailyActivity `json:"days"`
}

// TransactionType 收支方向
type TransactionType string

const (
	TransactionReceived TransactionType = "received"
	TransactionSent     TransactionType = "sent"
)

// Transaction 钱包流水
type Transaction struct {
	ID           string          `json:"id"`
	Type         TransactionType `json:"type"`
	Amount       int             `json:"amount"`
	Currency     string          `json:"currency"`
	Counterparty string          `json:"counterparty"`
	Gig          string          `json:"gig"`
	Date         time.Time       `json:"date"`
}
