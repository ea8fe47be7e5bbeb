package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

type SendGridTransport struct {
	client sendGridClient
}

func NewSendGrid(apiKey string) *SendGridTransport {
	return &SendGridTransport{client: sendgrid.NewSendClient(apiKey)}
}

func (t *SendGridTransport) Send(ctx context.Context, msg Message) (Ack, error) {
	m := sgmail.NewV3MailInit(
		sgmail.NewEmail("", msg.From),
		msg.Subject,
		sgmail.NewEmail("", msg.To),
		sgmail.NewContent("text/plain", msg.Body),
	)

	resp, err := t.client.SendWithContext(ctx, m)
	if err != nil {
		return Ack{}, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Ack{}, fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}

	ack := Ack{Provider: ProviderSendGrid}
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		ack.ID = ids[0]
	}
	return ack, nil
}
