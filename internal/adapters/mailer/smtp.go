package mailer

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/abeliasun/backoffice/internal/domain"
)

// SMTPMailer delivers rendered reports over SMTP. The PDF arrives already
// rendered; this adapter only attaches and sends it.
type SMTPMailer struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// NewFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS and
// SMTP_FROM_EMAIL. An unconfigured mailer is still constructed; Send
// reports the missing config instead of panicking.
func NewFromEnv() *SMTPMailer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	from := os.Getenv("SMTP_FROM_EMAIL")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}
	return &SMTPMailer{
		Host: os.Getenv("SMTP_HOST"),
		Port: port,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: from,
	}
}

func (m *SMTPMailer) Send(_ context.Context, rm *domain.ReportMail) error {
	if m.Host == "" || m.Port == 0 || m.User == "" || m.Pass == "" {
		log.Warn().Msg("smtp not configured, report email not sent")
		return errors.New("smtp transport not configured")
	}
	if len(rm.Recipients) == 0 {
		return errors.New("no recipients")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", rm.Recipients...)
	msg.SetHeader("Subject", rm.Subject)
	msg.SetBody("text/plain", rm.Body)
	if len(rm.PDF) > 0 {
		name := rm.Filename
		if name == "" {
			name = "report.pdf"
		}
		msg.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(rm.PDF)
			return err
		}))
	}

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	d.SSL = m.Port == 465
	if err := d.DialAndSend(msg); err != nil {
		log.Error().Err(err).Strs("to", rm.Recipients).Msg("report email send failed")
		return err
	}
	return nil
}
