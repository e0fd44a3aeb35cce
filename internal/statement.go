package internal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sportunion/clubmart/internal/model"
)

// statementMonths counts how far the default member statement reaches back.
const statementMonths = 3

// MonthStart truncates t to the first of its month at local midnight. Month
// buckets are computed at local time, matching what members see on screen.
func MonthStart(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, time.Local)
}

// DefaultStatementRange spans from the first of the month two months ago
// through the start of next month.
func DefaultStatementRange(now time.Time) (time.Time, time.Time) {
	return MonthStart(now).AddDate(0, -(statementMonths - 1), 0), MonthStart(now).AddDate(0, 1, 0)
}

// YearRange spans one calendar year, for the statistics view.
func YearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return from, from.AddDate(1, 0, 0)
}

// BuildStatement partitions [from, to) into calendar-month buckets and
// aggregates the order lines per (article, day), splitting every group into
// an already-billed part and an open part. Months come back most recent
// first; a month without orders keeps an empty Articles slice. Within a
// month, groups appear in order of first occurrence, which is order time
// because lines arrive oldest first.
func BuildStatement(lines []model.OrderLine, articleNames map[int]string, from, to time.Time) []model.MonthStatement {
	type groupKey struct {
		articleID int
		day       string
	}

	var months []model.MonthStatement
	monthIdx := make(map[string]int)
	for m := MonthStart(from); m.Before(to); m = m.AddDate(0, 1, 0) {
		monthIdx[m.Format("2006-01")] = len(months)
		months = append(months, model.MonthStatement{
			Month:    m,
			Articles: []model.ArticleSummary{},
			Total:    decimal.Zero,
			Open:     decimal.Zero,
		})
	}

	groupIdx := make(map[groupKey]int)
	for _, l := range lines {
		if l.OrderTime.Before(from) || !l.OrderTime.Before(to) {
			continue
		}

		lt := l.OrderTime.Local()
		mi, ok := monthIdx[lt.Format("2006-01")]
		if !ok {
			continue
		}
		month := &months[mi]

		k := groupKey{articleID: l.ArticleID, day: lt.Format("2006-01-02")}
		gi, ok := groupIdx[k]
		if !ok {
			gi = len(month.Articles)
			groupIdx[k] = gi
			month.Articles = append(month.Articles, model.ArticleSummary{
				ArticleID:   l.ArticleID,
				Name:        articleNames[l.ArticleID],
				Day:         time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.Local),
				Total:       decimal.Zero,
				BilledTotal: decimal.Zero,
			})
		}
		sum := &month.Articles[gi]

		lineTotal := l.Price.Mul(decimal.NewFromInt(int64(l.Amount)))
		if l.BillSendTime != nil {
			sum.BilledAmount += l.Amount
			sum.BilledTotal = sum.BilledTotal.Add(lineTotal)
		} else {
			sum.Amount += l.Amount
			sum.Total = sum.Total.Add(lineTotal)
			month.Open = month.Open.Add(lineTotal)
		}
		month.Total = month.Total.Add(lineTotal)
	}

	for i, j := 0, len(months)-1; i < j; i, j = i+1, j-1 {
		months[i], months[j] = months[j], months[i]
	}
	return months
}
