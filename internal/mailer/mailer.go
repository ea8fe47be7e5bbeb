// Package mailer sends verification codes through a configured mail transport.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

const (
	verificationSubject = "Verification Code"
	sendFailedMessage   = "Unable to send email"
)

// Code is a caller-generated verification token. It decodes from either a
// JSON string or a JSON number and keeps the literal text.
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}
	*c = Code(data)
	return nil
}

type Request struct {
	Email string `json:"email"`
	Code  Code   `json:"code"`
}

type Response struct {
	Success bool `json:"success"`
}

type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Ack is the provider's acceptance of a send request. It does not confirm
// delivery.
type Ack struct {
	Provider string
	ID       string
}

type Transport interface {
	Send(ctx context.Context, msg Message) (Ack, error)
}

// MailError is the caller-visible failure returned when the transport rejects
// a message.
type MailError struct {
	Code    string
	Message string
	Err     error
}

func (e *MailError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *MailError) Unwrap() error {
	return e.Err
}

type VerificationMailer struct {
	transport Transport
	from      string
	logger    *slog.Logger
}

func NewVerificationMailer(transport Transport, from string, logger *slog.Logger) *VerificationMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerificationMailer{
		transport: transport,
		from:      from,
		logger:    logger,
	}
}

func (m *VerificationMailer) SendVerificationEmail(ctx context.Context, req Request) (Response, error) {
	msg := m.buildMessage(req)
	if _, err := m.transport.Send(ctx, msg); err != nil {
		m.logger.ErrorContext(ctx, "error sending email", slog.String("to", msg.To), slog.Any("err", err))
		return Response{}, &MailError{
			Code:    "internal",
			Message: sendFailedMessage,
			Err:     err,
		}
	}
	return Response{Success: true}, nil
}

func (m *VerificationMailer) buildMessage(req Request) Message {
	return Message{
		From:    m.from,
		To:      req.Email,
		Subject: verificationSubject,
		Body:    fmt.Sprintf("Your verification code is %s", req.Code),
	}
}
