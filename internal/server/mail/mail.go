// Package mail sends the one-time codes and owner/requester notices.
package mail

import (
	"context"
	"fmt"
	"sync"

	gomail "github.com/wneessen/go-mail"

	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	sc "github.com/dmitrijs2005/imagekeeper/internal/server/config"
)

type Mailer interface {
	Send(ctx context.Context, subject, body string, to ...string) error
}

var dialAndSend = func(ctx context.Context, c *gomail.Client, msgs ...*gomail.Msg) error {
	return c.DialAndSendWithContext(ctx, msgs...)
}

// SMTPMailer delivers plain-text mail through an SMTP relay.
type SMTPMailer struct {
	from   string
	client *gomail.Client
}

func NewSMTPMailer(config *sc.Config) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(config.SMTPPort),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if config.SMTPUser != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(config.SMTPUser),
			gomail.WithPassword(config.SMTPPassword),
		)
	}
	client, err := gomail.NewClient(config.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{from: config.SMTPFrom, client: client}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, subject, body string, to ...string) error {
	msg, err := newMessage(m.from, subject, body, to...)
	if err != nil {
		return err
	}
	if err := dialAndSend(ctx, m.client, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func newMessage(from, subject, body string, to ...string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return nil, fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return msg, nil
}

// LogMailer writes mails to the log instead of sending them. Used when no
// SMTP host is configured.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(l logging.Logger) *LogMailer {
	return &LogMailer{logger: l.With("module", "mail")}
}

func (m *LogMailer) Send(ctx context.Context, subject, body string, to ...string) error {
	m.logger.Info(ctx, "mail", "to", to, "subject", subject, "body", body)
	return nil
}

// Notifier sends mail in the background. Failures are logged and never
// reach the caller.
type Notifier struct {
	mailer Mailer
	logger logging.Logger
	wg     sync.WaitGroup
}

func NewNotifier(m Mailer, l logging.Logger) *Notifier {
	return &Notifier{mailer: m, logger: l.With("module", "notifier")}
}

// Notify queues a mail. The send is detached from ctx cancellation so it
// outlives the request that triggered it.
func (n *Notifier) Notify(ctx context.Context, subject, body string, to ...string) {
	ctx = context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.mailer.Send(ctx, subject, body, to...); err != nil {
			n.logger.Warn(ctx, "notification failed", "subject", subject, "error", err)
		}
	}()
}

// Wait blocks until queued notifications finish.
func (n *Notifier) Wait() { n.wg.Wait() }
