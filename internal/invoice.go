package internal

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sportunion/clubmart/internal/model"
)

// InvoiceItem is one article on an invoice, aggregated over every unbilled
// line of that article.
type InvoiceItem struct {
	ArticleID int
	Name      string
	Amount    int
	Total     decimal.Decimal
}

type Invoice struct {
	MemberName string
	Subject    string
	Items      []InvoiceItem
	Total      decimal.Decimal
	OrgName    string
	IBAN       string
}

const invoiceIntro = `Dear club member,

below is a list of the units you consumed.
Please transfer the amount due within 2 weeks to the following account.

%s
IBAN: %s

With kind regards
Your treasurer

`

const invoiceHTMLTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8" />
<title>{{.Subject}}</title>
<style>
body { font-family: "Helvetica Neue", Arial, sans-serif; color: #111; }
table { border-collapse: collapse; font-size: 14px; }
td { padding: 4px 10px; border-bottom: 1px solid #e5e7eb; }
td.total { text-align: right; font-weight: bold; }
td.price { text-align: right; }
</style>
</head>
<body>
<p>Dear club member,</p>
<p>below is a list of the units you consumed.<br />
Please transfer the amount due within 2 weeks to the following account.</p>
<p>{{.OrgName}}<br />IBAN: {{.IBAN}}</p>
<table>
{{range .Items}}<tr><td>{{.Amount}} x {{.Name}}</td><td class="price">&euro; {{eur .Total}}</td></tr>
{{end}}<tr><td>Total:</td><td class="total">&euro; {{eur .Total}}</td></tr>
</table>
<p>With kind regards<br />Your treasurer</p>
</body>
</html>
`

var invoiceHTML = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"eur": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).Parse(invoiceHTMLTemplate))

// BuildInvoiceItems groups unbilled order lines per article, in order of
// first occurrence, and returns the items with the grand total.
func BuildInvoiceItems(lines []model.OrderLine, articleNames map[int]string) ([]InvoiceItem, decimal.Decimal) {
	var items []InvoiceItem
	idx := make(map[int]int)
	total := decimal.Zero

	for _, l := range lines {
		i, ok := idx[l.ArticleID]
		if !ok {
			i = len(items)
			idx[l.ArticleID] = i
			items = append(items, InvoiceItem{
				ArticleID: l.ArticleID,
				Name:      articleNames[l.ArticleID],
				Total:     decimal.Zero,
			})
		}

		lineTotal := l.Price.Mul(decimal.NewFromInt(int64(l.Amount)))
		items[i].Amount += l.Amount
		items[i].Total = items[i].Total.Add(lineTotal)
		total = total.Add(lineTotal)
	}

	return items, total
}

// NewInvoice assembles the invoice for one member from their unbilled lines.
// The subject carries the billing month of the cutoff, "01/2006 invoice".
func NewInvoice(member model.Member, lines []model.OrderLine, articleNames map[int]string, cutoff time.Time, orgName, iban string) Invoice {
	items, total := BuildInvoiceItems(lines, articleNames)
	return Invoice{
		MemberName: member.FullName(),
		Subject:    fmt.Sprintf("%s invoice for %s", cutoff.Format("01/2006"), member.FullName()),
		Items:      items,
		Total:      total,
		OrgName:    orgName,
		IBAN:       iban,
	}
}

// Text renders the fixed-width plaintext invoice body.
func (i Invoice) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, invoiceIntro, i.OrgName, i.IBAN)
	for _, item := range i.Items {
		fmt.Fprintf(&b, "%3d x %-30s EUR %8s\n", item.Amount, item.Name, item.Total.StringFixed(2))
	}
	b.WriteString(strings.Repeat("-", 47) + "\n")
	fmt.Fprintf(&b, "%36s EUR %8s\n", "Total:", i.Total.StringFixed(2))
	return b.String()
}

// HTML renders the invoice through the HTML layout.
func (i Invoice) HTML() (string, error) {
	var buf bytes.Buffer
	err := invoiceHTML.Execute(&buf, i)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
