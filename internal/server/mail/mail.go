// Package mail hands transactional emails to the notification worker. The
// server never talks SMTP itself; a mail request is a message on the
// notifications exchange.
package mail

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/messaging"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

// Template identifiers understood by the notification worker.
const (
	TemplateEmailVerification = "email_verification"
	TemplatePasswordReset     = "password_reset"
)

var subjects = map[string]string{
	TemplateEmailVerification: "Verify your email address",
	TemplatePasswordReset:     "Reset your password",
}

// Dispatcher sends a templated email. It never fails the caller: the result
// only says whether the request was accepted.
type Dispatcher interface {
	Send(ctx context.Context, templateID, address string, vars map[string]string) bool
}

// Links builds the URLs embedded in emails.
type Links struct {
	BaseURL string
}

func (l Links) Verification(token string) string {
	return strings.TrimRight(l.BaseURL, "/") + "/verify/" + token
}

func (l Links) PasswordReset(token string) string {
	return strings.TrimRight(l.BaseURL, "/") + "/reset-password/" + token
}

// QueueDispatcher publishes mail requests through a messaging.Publisher.
type QueueDispatcher struct {
	publisher messaging.Publisher
	exchange  string
	logger    logging.Logger
}

func NewQueueDispatcher(p messaging.Publisher, exchange string, logger logging.Logger) *QueueDispatcher {
	return &QueueDispatcher{
		publisher: p,
		exchange:  exchange,
		logger:    logger.With("module", "mail"),
	}
}

func (d *QueueDispatcher) Send(ctx context.Context, templateID, address string, vars map[string]string) bool {
	subject, ok := subjects[templateID]
	if !ok {
		d.logger.Error(ctx, "unknown mail template", "template", templateID)
		return false
	}

	req := models.MailRequest{
		To:       address,
		Subject:  subject,
		Template: templateID,
		Vars:     vars,
	}
	if err := d.publisher.Publish(ctx, d.exchange, common.RoutingKeyMailRequested, req); err != nil {
		d.logger.Error(ctx, "mail request not published", "template", templateID, "error", err)
		return false
	}
	return true
}
