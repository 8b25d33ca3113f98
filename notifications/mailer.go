package notifications

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	config "github.com/gekoeducation/geko-api/configs"
)

// ErrBadHeader marks a message rejected before dialing because an address or
// subject would inject extra headers. Callers map it to a client error;
// anything else from the transport is a server-side failure.
var ErrBadHeader = errors.New("invalid header found in the email")

// Sender is what the contact handler depends on.
type Sender interface {
	Send(toEmail, subject, body string) error
}

// Mailer sends plain-text mail over SMTP.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		log.Println("⚠️ Email transport not configured; contact notifications will fail")
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.EmailSender,
	}
}

func (m *Mailer) Send(toEmail, subject, body string) error {
	if hasHeaderInjection(toEmail) || hasHeaderInjection(subject) || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("%w: to=%q subject=%q", ErrBadHeader, toEmail, subject)
	}

	headers := map[string]string{
		"From":         m.from,
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=\"UTF-8\"",
	}

	var msg strings.Builder
	for k, v := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", k, v)
	}
	msg.WriteString("\r\n" + body)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	if err := smtp.SendMail(addr, auth, m.from, []string{toEmail}, []byte(msg.String())); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("✅ Email sent successfully to %s", toEmail)
	return nil
}

func hasHeaderInjection(v string) bool {
	return strings.ContainsAny(v, "\r\n")
}
