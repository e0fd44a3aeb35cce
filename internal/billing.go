package internal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sportunion/clubmart/internal/model"
)

type IBilling interface {
	RunBilling(context.Context, model.BillingInput) (model.BillingReport, error)
}

// BillingService invoices members with unbilled orders. Members are
// processed strictly one after another; each member's billed-flag update and
// invoice email succeed or fail together.
type BillingService struct {
	repo     IRepository
	mailer   IMailer
	logger   *zap.SugaredLogger
	orgName  string
	iban     string
	minTotal decimal.Decimal
	now      func() time.Time
}

func NewBillingService(repo IRepository, mailer IMailer, orgName, iban string, minTotal decimal.Decimal, logger *zap.SugaredLogger) *BillingService {
	return &BillingService{
		repo:     repo,
		mailer:   mailer,
		logger:   logger,
		orgName:  orgName,
		iban:     iban,
		minTotal: minTotal,
		now:      time.Now,
	}
}

// RunBilling invoices every selected member with unbilled orders up to the
// cutoff. A store error aborts the run; a failed email send only rolls back
// that member and is recorded in the report.
func (b *BillingService) RunBilling(ctx context.Context, input model.BillingInput) (model.BillingReport, error) {
	report := model.BillingReport{}

	members, err := b.repo.GetMembers(ctx, input.MemberIDs)
	if err != nil {
		return report, err
	}

	names, err := b.repo.GetArticleNamesIndexedByID(ctx)
	if err != nil {
		return report, err
	}

	for _, member := range members {
		lines, err := b.repo.GetUnbilledOrdersBefore(ctx, member.ID, input.Cutoff)
		if err != nil {
			return report, err
		}
		if len(lines) == 0 {
			continue
		}
		report.MembersWithOrders++

		if member.Email == "" {
			report.NoEmail = append(report.NoEmail, member.FullName())
			continue
		}

		invoice := NewInvoice(member, lines, names, input.Cutoff, b.orgName, b.iban)

		if b.minTotal.IsPositive() && invoice.Total.LessThan(b.minTotal) {
			report.BelowMinimum = append(report.BelowMinimum, member.FullName())
			continue
		}

		html, err := invoice.HTML()
		if err != nil {
			return report, err
		}

		mail := InvoiceMail{
			To:      member.Email,
			ToName:  member.FullName(),
			Bcc:     input.SendCopyTo,
			Subject: invoice.Subject,
			Text:    invoice.Text(),
			HTML:    html,
		}

		ids := make([]int, len(lines))
		for i, l := range lines {
			ids[i] = l.ID
		}

		err = b.repo.BillOrders(ctx, ids, b.now(), func() error {
			return b.mailer.SendInvoice(ctx, mail)
		})
		if err != nil {
			b.logger.Errorf("RunBilling: invoice for %s failed: %s", member.FullName(), err.Error())
			report.Errors = append(report.Errors, member.FullName())
			continue
		}
	}

	return report, nil
}
