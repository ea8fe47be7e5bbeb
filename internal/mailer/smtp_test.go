package mailer

import (
	"context"
	"testing"
)

func TestNewSMTP(t *testing.T) {
	cfg := SMTPConfig{
		Host: "localhost",
		Port: 1025,
		User: "user",
		Pass: "pass",
	}

	tr, err := NewSMTP(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr == nil || tr.client == nil {
		t.Fatal("expected smtp transport to have client")
	}
}

func TestNewSMTPMsg(t *testing.T) {
	m, err := newSMTPMsg(Message{
		From:    "no-reply@example.com",
		To:      "user@example.com",
		Subject: verificationSubject,
		Body:    "Your verification code is 123456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rcpts, err := m.GetRecipients()
	if err != nil {
		t.Fatalf("GetRecipients error: %v", err)
	}
	if len(rcpts) != 1 || rcpts[0] != "user@example.com" {
		t.Fatalf("unexpected recipients: %v", rcpts)
	}
}

func TestSMTPTransportSendInvalidFrom(t *testing.T) {
	tr := &SMTPTransport{}

	_, err := tr.Send(context.Background(), Message{From: "invalid address", To: "user@example.com"})
	if err == nil {
		t.Fatal("expected error for invalid from address")
	}
}

func TestSMTPTransportSendInvalidTo(t *testing.T) {
	tr := &SMTPTransport{}

	_, err := tr.Send(context.Background(), Message{From: "no-reply@example.com", To: "bad address"})
	if err == nil {
		t.Fatal("expected error for invalid recipient")
	}
}
