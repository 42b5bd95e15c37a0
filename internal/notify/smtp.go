// Package notify sends operational email over plain SMTP.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
)

// SMTPNotifier sends signup alerts through a single SMTP relay.
type SMTPNotifier struct {
	host string
	port int
	from string
	auth smtp.Auth
}

// Ensure SMTPNotifier implements portsrepo.SignupNotifier
var _ portsrepo.SignupNotifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier builds a notifier; username may be empty for relays that
// accept unauthenticated mail from the app network.
func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPNotifier{host: host, port: port, from: from, auth: auth}
}

func (n *SMTPNotifier) NotifySignup(_ context.Context, adminEmails []string, userEmail string, userName string) error {
	if len(adminEmails) == 0 {
		return nil
	}
	subject := "New account awaiting activation"
	body := fmt.Sprintf("%s (%s) signed up and is waiting for an administrator to activate the account.\r\n", userName, userEmail)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.from, strings.Join(adminEmails, ", "), subject, body)

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	if err := smtp.SendMail(addr, n.auth, n.from, adminEmails, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send signup notification: %w", err)
	}
	return nil
}

// NopNotifier drops notifications. Used when SMTP is not configured.
type NopNotifier struct{}

var _ portsrepo.SignupNotifier = (*NopNotifier)(nil)

func (NopNotifier) NotifySignup(context.Context, []string, string, string) error { return nil }
