package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"

	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
	"github.com/wneessen/go-mail"
)

// Mailer opens one STARTTLS session per Send and closes it afterwards.
// Delivery failures are returned as is; there is no retry.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	logger   logger.Logger

	// tlsConfig replaces go-mail's default STARTTLS settings when set.
	tlsConfig *tls.Config
}

func NewMailer(host string, port int, username, password string, log logger.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		logger:   logger.Component(log, "smtp_mailer"),
	}
}

func (m *Mailer) Send(ctx context.Context, email *entities.Email) error {
	msg, err := BuildMessage(email)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
	}
	if m.tlsConfig != nil {
		opts = append(opts, mail.WithTLSConfig(m.tlsConfig))
	}

	client, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	m.logger.Debugf("Sending %q to %s via %s:%d", email.Subject, email.To, m.host, m.port)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver message via %s:%d: %w", m.host, m.port, err)
	}

	m.logger.Infof("Message delivered to %s", email.To)
	return nil
}

// BuildMessage converts an Email into a multipart MIME message: a text/plain
// body and, when present, a base64 application/octet-stream attachment.
func BuildMessage(email *entities.Email) (*mail.Msg, error) {
	if email == nil {
		return nil, fmt.Errorf("nothing to send")
	}

	msg := mail.NewMsg()
	if err := msg.From(email.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", email.From, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("invalid to address %q: %w", email.To, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)

	if a := email.Attachment; a != nil {
		contentType := a.ContentType
		if contentType == "" {
			contentType = string(mail.TypeAppOctetStream)
		}
		msg.AttachReadSeeker(a.Name, bytes.NewReader(a.Data),
			mail.WithFileContentType(mail.ContentType(contentType)),
			mail.WithFileEncoding(mail.EncodingB64),
		)
	}

	return msg, nil
}

type MailerFactory struct {
	logger logger.Logger
}

func NewMailerFactory(log logger.Logger) ports.SenderFactory {
	return &MailerFactory{logger: log}
}

func (f *MailerFactory) CreateSender(host string, port int, username, password string) ports.Sender {
	logger.Component(f.logger, "smtp_mailer_factory").Infof("Creating SMTP mailer for %s:%d", host, port)
	return NewMailer(host, port, username, password, f.logger)
}
