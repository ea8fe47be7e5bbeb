package mailer

import (
	"fmt"
	"strings"
)

const (
	ProviderSendGrid = "sendgrid"
	ProviderSMTP     = "smtp"
	ProviderLog      = "log"
)

// ResolveProvider picks the transport name. A blank name selects the first
// provider that has credentials, falling back to the log transport.
func ResolveProvider(name, apiKey, smtpHost string) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(name)); p {
	case ProviderSendGrid, ProviderSMTP, ProviderLog:
		return p, nil
	case "":
		switch {
		case apiKey != "":
			return ProviderSendGrid, nil
		case smtpHost != "":
			return ProviderSMTP, nil
		default:
			return ProviderLog, nil
		}
	default:
		return "", fmt.Errorf("unknown mail provider: %q", name)
	}
}
