package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfirmationBody_EscapesLink(t *testing.T) {
	body := confirmationBody(`http://localhost/auth/confirm?token=a&b="c"`)
	assert.Contains(t, body, `token=a&amp;b=&#34;c&#34;`)
	assert.NotContains(t, body, `"c"`)
}

func TestLogSender_LogsLink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewLogSender(zap.New(core))

	err := s.SendConfirmation(context.Background(), "a@example.com", "http://x/confirm?token=t")
	assert.NoError(t, err)

	entries := logs.FilterMessage("confirmation link").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "a@example.com", fields["to"])
		assert.Equal(t, "http://x/confirm?token=t", fields["link"])
	}
}
