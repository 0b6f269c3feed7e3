package digest

import (
	"github.com/wneessen/go-mail"

	"github.com/maryjean/suggestion-box/internal/mailconfig"
)

// Sender dispatches a composed message.
type Sender interface {
	Send(msg *Message) error
}

// SMTPSender sends messages over the configured SMTP transport.
type SMTPSender struct {
	transport mailconfig.Transport
}

// NewSMTPSender creates a sender for the given transport settings.
func NewSMTPSender(transport mailconfig.Transport) *SMTPSender {
	return &SMTPSender{transport: transport}
}

// Send delivers the message to all recipients in a single SMTP dialog.
func (s *SMTPSender) Send(msg *Message) error {
	m := mail.NewMsg()

	if err := m.From(s.transport.Auth.User); err != nil {
		return err
	}

	if err := m.To(msg.Recipients...); err != nil {
		return err
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	opts := []mail.Option{
		mail.WithPort(s.transport.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.transport.Auth.User),
		mail.WithPassword(s.transport.Auth.Pass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	// secure means implicit TLS on connect instead of STARTTLS
	if s.transport.Secure {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(s.transport.Host, opts...)
	if err != nil {
		return err
	}

	return client.DialAndSend(m)
}
