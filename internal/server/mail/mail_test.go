package mail

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	gomail "github.com/wneessen/go-mail"

	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	sc "github.com/dmitrijs2005/imagekeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_Send(t *testing.T) {
	orig := dialAndSend
	t.Cleanup(func() { dialAndSend = orig })

	var sent []*gomail.Msg
	dialAndSend = func(ctx context.Context, c *gomail.Client, msgs ...*gomail.Msg) error {
		sent = append(sent, msgs...)
		return nil
	}

	m, err := NewSMTPMailer(&sc.Config{SMTPHost: "localhost", SMTPPort: 2525, SMTPFrom: "noreply@example.com", SMTPUser: "u", SMTPPassword: "p"})
	require.NoError(t, err)

	require.NoError(t, m.Send(context.Background(), "Access Verification Code", "Your verification code is: 123456", "viewer@example.com"))
	require.Len(t, sent, 1)

	assert.Equal(t, []string{"Access Verification Code"}, sent[0].GetGenHeader(gomail.HeaderSubject))
	to := sent[0].GetToString()
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "viewer@example.com")

	var buf bytes.Buffer
	_, err = sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Your verification code is: 123456")
}

func TestSMTPMailer_SendErrors(t *testing.T) {
	orig := dialAndSend
	t.Cleanup(func() { dialAndSend = orig })
	boom := errors.New("relay down")
	dialAndSend = func(ctx context.Context, c *gomail.Client, msgs ...*gomail.Msg) error { return boom }

	m, err := NewSMTPMailer(&sc.Config{SMTPHost: "localhost", SMTPPort: 25, SMTPFrom: "noreply@example.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Send(context.Background(), "s", "b", "a@example.com"), boom)
	assert.Error(t, m.Send(context.Background(), "s", "b", "not an address"))
}

type recordingMailer struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (r *recordingMailer) Send(ctx context.Context, subject, body string, to ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, subject+"|"+strings.Join(to, ","))
	return r.err
}

func TestNotifier_DetachesFromCallerContext(t *testing.T) {
	rec := &recordingMailer{}
	n := NewNotifier(rec, logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	n.Notify(ctx, "New Access Request", "body", "owner@example.com")
	cancel()
	n.Wait()

	assert.Equal(t, []string{"New Access Request|owner@example.com"}, rec.calls)
}

func TestNotifier_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	n := NewNotifier(&recordingMailer{err: errors.New("nope")}, l)

	n.Notify(context.Background(), "Access Request Denied", "b", "a@example.com")
	n.Wait()

	assert.Contains(t, buf.String(), "notification failed")
	assert.Contains(t, buf.String(), "nope")
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, NewLogMailer(l).Send(context.Background(), "hello", "world", "a@example.com"))
	assert.Contains(t, buf.String(), "subject=hello")
}
