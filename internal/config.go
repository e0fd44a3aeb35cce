package internal

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

var c *config

const (
	RunAddress      = "RUN_ADDRESS"
	DatabaseURI     = "DATABASE_URI"
	SMTPHost        = "SMTP_HOST"
	SMTPPort        = "SMTP_PORT"
	SMTPUser        = "SMTP_USER"
	SMTPPassword    = "SMTP_PASSWORD"
	MailFrom        = "MAIL_FROM"
	MailFromName    = "MAIL_FROM_NAME"
	MailTimeout     = "MAIL_TIMEOUT"
	OrgName         = "ORG_NAME"
	OrgIBAN         = "ORG_IBAN"
	AdminPassword   = "ADMIN_PASSWORD"
	JWTSecret       = "JWT_SECRET"
	MinInvoiceTotal = "MIN_INVOICE_TOTAL"
)

const (
	defaultRunAddress   = "localhost:8080"
	defaultSMTPHost     = "localhost"
	defaultSMTPPort     = "25"
	defaultMailFrom     = "no-reply@example.org"
	defaultMailFromName = "Club Order System"
	defaultMailTimeout  = "30s"
	defaultOrgName      = "Sports Club"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type config struct {
	RunAddress  string
	DatabaseURI string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string
	MailTimeout  time.Duration

	OrgName string
	OrgIBAN string

	AdminPassword string
	JWTSecret     string

	// MinInvoiceTotal below which a member is skipped during billing.
	// Zero disables the check.
	MinInvoiceTotal decimal.Decimal
}

func NewConfig() *config {
	c = new(config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s sslmode=disable", // database=clubmart
		host, port, user, password)

	var smtpPort, mailTimeout, minTotal string

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.SMTPHost, "smtp-host", setEnvOrDefault(SMTPHost, defaultSMTPHost), "smtp relay host")
	flag.StringVar(&smtpPort, "smtp-port", setEnvOrDefault(SMTPPort, defaultSMTPPort), "smtp relay port")
	flag.StringVar(&c.SMTPUser, "smtp-user", setEnvOrDefault(SMTPUser, ""), "smtp user")
	flag.StringVar(&c.SMTPPassword, "smtp-password", setEnvOrDefault(SMTPPassword, ""), "smtp password")
	flag.StringVar(&c.MailFrom, "mail-from", setEnvOrDefault(MailFrom, defaultMailFrom), "invoice sender address")
	flag.StringVar(&c.MailFromName, "mail-from-name", setEnvOrDefault(MailFromName, defaultMailFromName), "invoice sender name")
	flag.StringVar(&mailTimeout, "mail-timeout", setEnvOrDefault(MailTimeout, defaultMailTimeout), "timeout for one invoice send")
	flag.StringVar(&c.OrgName, "org-name", setEnvOrDefault(OrgName, defaultOrgName), "organisation name on invoices")
	flag.StringVar(&c.OrgIBAN, "org-iban", setEnvOrDefault(OrgIBAN, ""), "bank account printed on invoices")
	flag.StringVar(&c.AdminPassword, "admin-password", setEnvOrDefault(AdminPassword, ""), "password for the admin area")
	flag.StringVar(&c.JWTSecret, "jwt-secret", setEnvOrDefault(JWTSecret, "secret"), "signing key for admin sessions")
	flag.StringVar(&minTotal, "min-invoice-total", setEnvOrDefault(MinInvoiceTotal, "0"), "skip members below this open total, 0 = off")

	flag.Parse()

	if _, err := fmt.Sscanf(smtpPort, "%d", &c.SMTPPort); err != nil {
		c.SMTPPort = 25
	}
	if d, err := time.ParseDuration(mailTimeout); err == nil {
		c.MailTimeout = d
	} else {
		c.MailTimeout = 30 * time.Second
	}
	if m, err := decimal.NewFromString(minTotal); err == nil {
		c.MinInvoiceTotal = m
	}

	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
