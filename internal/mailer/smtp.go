package mailer

import (
	"context"

	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
}

type SMTPTransport struct {
	client *mail.Client
}

func NewSMTP(cfg SMTPConfig) (*SMTPTransport, error) {
	client, err := mail.NewClient(
		cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Pass),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
	)
	if err != nil {
		return nil, err
	}

	return &SMTPTransport{client: client}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, msg Message) (Ack, error) {
	m, err := newSMTPMsg(msg)
	if err != nil {
		return Ack{}, err
	}
	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		return Ack{}, err
	}
	return Ack{Provider: ProviderSMTP}, nil
}

func newSMTPMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, err
	}
	if err := m.To(msg.To); err != nil {
		return nil, err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
