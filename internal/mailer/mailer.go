package mailer

import (
	"context"
	"io"
	"time"

	"event-registration-backend/internal/config"

	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Attachment is an in-memory file attached to an outgoing message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a plain-text email with optional attachments. The sending
// identity is fixed per Sender, not per message.
type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Sender sends a single mail message. Implementations are constructed once at
// startup and shared across requests.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPSender sends messages over SMTP with a fixed sending identity.
type SMTPSender struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

// NewSMTPSender creates the process-wide SMTP sender from configuration.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:    cfg.MailFrom,
		timeout: time.Duration(cfg.SMTPTimeoutSec) * time.Second,
	}
}

// From returns the fixed sending identity.
func (s *SMTPSender) From() string {
	return s.from
}

// Send dials the SMTP server and delivers the message. The dial-and-send
// round trip has no native context support, so it runs in a goroutine and is
// raced against the context and the configured timeout.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	for _, a := range msg.Attachments {
		content := a.Content
		m.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
