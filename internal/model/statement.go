package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArticleSummary aggregates the order lines of one article on one calendar
// day, split into an already-billed part and an open part.
type ArticleSummary struct {
	ArticleID    int             `json:"articleId"`
	Name         string          `json:"name"`
	Day          time.Time       `json:"day"`
	Amount       int             `json:"amount"`
	Total        decimal.Decimal `json:"total"`
	BilledAmount int             `json:"billedAmount"`
	BilledTotal  decimal.Decimal `json:"billedTotal"`
}

// MonthStatement is one calendar-month bucket of a statement. Months with no
// orders carry an empty Articles slice.
type MonthStatement struct {
	Month    time.Time        `json:"month"`
	Articles []ArticleSummary `json:"articles"`
	Total    decimal.Decimal  `json:"total"`
	Open     decimal.Decimal  `json:"open"`
}
