package test

import (
	"time"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sportunion/clubmart/internal"
	"github.com/sportunion/clubmart/internal/model"
)

var _ = Describe("Statement", func() {
	var (
		names map[int]string
		cola  decimal.Decimal
		chips decimal.Decimal
		day   time.Time
	)
	BeforeEach(func() {
		names = map[int]string{1: "Cola", 2: "Chips"}
		cola = decimal.RequireFromString("1.50")
		chips = decimal.RequireFromString("2.00")
		day = time.Date(2024, time.May, 14, 18, 30, 0, 0, time.Local)
	})
	Context("BuildStatement", func() {
		It("shows unbilled orders as open", func() {
			lines := []model.OrderLine{
				{ID: 1, MemberID: 1, ArticleID: 1, Amount: 2, Price: cola, OrderTime: day},
				{ID: 2, MemberID: 1, ArticleID: 2, Amount: 1, Price: chips, OrderTime: day},
			}
			from, to := internal.MonthStart(day), internal.MonthStart(day).AddDate(0, 1, 0)

			months := internal.BuildStatement(lines, names, from, to)
			Expect(months).To(HaveLen(1))
			Expect(months[0].Open.Equal(decimal.RequireFromString("5.00"))).To(BeTrue())
			Expect(months[0].Total.Equal(decimal.RequireFromString("5.00"))).To(BeTrue())
			Expect(months[0].Articles).To(HaveLen(2))
			Expect(months[0].Articles[0].Name).To(Equal("Cola"))
			Expect(months[0].Articles[0].Amount).To(Equal(2))
			Expect(months[0].Articles[0].BilledAmount).To(Equal(0))
		})
		It("splits billed lines from open lines", func() {
			sent := day.Add(time.Hour)
			lines := []model.OrderLine{
				{ID: 1, ArticleID: 1, Amount: 2, Price: cola, OrderTime: day, BillSendTime: &sent},
				{ID: 2, ArticleID: 1, Amount: 1, Price: cola, OrderTime: day},
			}
			from, to := internal.MonthStart(day), internal.MonthStart(day).AddDate(0, 1, 0)

			months := internal.BuildStatement(lines, names, from, to)
			Expect(months).To(HaveLen(1))
			Expect(months[0].Articles).To(HaveLen(1))
			Expect(months[0].Articles[0].BilledAmount).To(Equal(2))
			Expect(months[0].Articles[0].BilledTotal.Equal(decimal.RequireFromString("3.00"))).To(BeTrue())
			Expect(months[0].Articles[0].Amount).To(Equal(1))
			Expect(months[0].Articles[0].Total.Equal(decimal.RequireFromString("1.50"))).To(BeTrue())
			Expect(months[0].Open.Equal(decimal.RequireFromString("1.50"))).To(BeTrue())
		})
		It("keeps empty months in the output, most recent first", func() {
			lines := []model.OrderLine{
				{ID: 1, ArticleID: 1, Amount: 1, Price: cola, OrderTime: day},
			}
			from := internal.MonthStart(day).AddDate(0, -2, 0)
			to := internal.MonthStart(day).AddDate(0, 1, 0)

			months := internal.BuildStatement(lines, names, from, to)
			Expect(months).To(HaveLen(3))
			Expect(months[0].Month.Month()).To(Equal(time.May))
			Expect(months[1].Month.Month()).To(Equal(time.April))
			Expect(months[2].Month.Month()).To(Equal(time.March))
			Expect(months[0].Articles).To(HaveLen(1))
			Expect(months[1].Articles).To(BeEmpty())
			Expect(months[2].Articles).To(BeEmpty())
		})
		It("groups by article and calendar day in first-occurrence order", func() {
			lines := []model.OrderLine{
				{ID: 1, ArticleID: 2, Amount: 1, Price: chips, OrderTime: day},
				{ID: 2, ArticleID: 1, Amount: 1, Price: cola, OrderTime: day.Add(time.Hour)},
				{ID: 3, ArticleID: 2, Amount: 2, Price: chips, OrderTime: day.Add(2 * time.Hour)},
				{ID: 4, ArticleID: 2, Amount: 1, Price: chips, OrderTime: day.AddDate(0, 0, 1)},
			}
			from, to := internal.MonthStart(day), internal.MonthStart(day).AddDate(0, 1, 0)

			months := internal.BuildStatement(lines, names, from, to)
			Expect(months[0].Articles).To(HaveLen(3))
			Expect(months[0].Articles[0].Name).To(Equal("Chips"))
			Expect(months[0].Articles[0].Amount).To(Equal(3))
			Expect(months[0].Articles[1].Name).To(Equal("Cola"))
			Expect(months[0].Articles[2].Name).To(Equal("Chips"))
			Expect(months[0].Articles[2].Day.Day()).To(Equal(15))
		})
		It("never loses or double-counts a line", func() {
			sent := day.Add(time.Hour)
			lines := []model.OrderLine{
				{ID: 1, ArticleID: 1, Amount: 2, Price: cola, OrderTime: day},
				{ID: 2, ArticleID: 2, Amount: 1, Price: chips, OrderTime: day.AddDate(0, 0, 3), BillSendTime: &sent},
				{ID: 3, ArticleID: 1, Amount: 4, Price: cola, OrderTime: day.AddDate(0, -1, 0)},
				{ID: 4, ArticleID: 2, Amount: 3, Price: chips, OrderTime: day.AddDate(0, -2, 5)},
			}
			from := internal.MonthStart(day).AddDate(0, -2, 0)
			to := internal.MonthStart(day).AddDate(0, 1, 0)

			raw := decimal.Zero
			for _, l := range lines {
				raw = raw.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Amount))))
			}

			aggregated := decimal.Zero
			for _, m := range internal.BuildStatement(lines, names, from, to) {
				aggregated = aggregated.Add(m.Total)
			}
			Expect(aggregated.Equal(raw)).To(BeTrue())
		})
		It("ignores lines outside the range", func() {
			lines := []model.OrderLine{
				{ID: 1, ArticleID: 1, Amount: 1, Price: cola, OrderTime: day.AddDate(0, -3, 0)},
				{ID: 2, ArticleID: 1, Amount: 1, Price: cola, OrderTime: day},
			}
			from, to := internal.MonthStart(day), internal.MonthStart(day).AddDate(0, 1, 0)

			months := internal.BuildStatement(lines, names, from, to)
			Expect(months).To(HaveLen(1))
			Expect(months[0].Articles[0].Amount).To(Equal(1))
		})
	})
	Context("DefaultStatementRange", func() {
		It("spans three months through the start of next month", func() {
			now := time.Date(2024, time.May, 14, 12, 0, 0, 0, time.Local)
			from, to := internal.DefaultStatementRange(now)
			Expect(from).To(Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)))
			Expect(to).To(Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)))
		})
	})
})
