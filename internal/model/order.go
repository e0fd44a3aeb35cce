package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one persisted record of a member ordering Amount units of one
// article. Price is the article price at order time, never a live reference.
// BillSendTime stays nil until a billing run invoices the line.
type OrderLine struct {
	ID           int             `json:"id"`
	MemberID     int             `json:"memberId"`
	ArticleID    int             `json:"articleId"`
	Amount       int             `json:"amount"`
	Price        decimal.Decimal `json:"price"`
	OrderTime    time.Time       `json:"orderTime"`
	BillSendTime *time.Time      `json:"billSendTime,omitempty"`
	SourceIP     string          `json:"-"`
}

type OrderInput struct {
	ArticleID int `json:"id"`
	Amount    int `json:"amount"`
}

type SubmitOrderInput struct {
	MemberID int          `json:"memberId"`
	KeyCode  string       `json:"keyCode"`
	Articles []OrderInput `json:"articles"`
}

type OrderConfirmation struct {
	MemberName string          `json:"memberName"`
	Lines      int             `json:"lines"`
	Total      decimal.Decimal `json:"total"`
}
