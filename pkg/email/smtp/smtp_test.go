package smtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lash-app/backend/pkg/email"
)

func TestNewSMTPSender(t *testing.T) {
	_, err := NewSMTPSender("not-an-email", "pass", "smtp.example.com", 587)
	assert.Error(t, err)

	s, err := NewSMTPSender("noreply@lash.app", "pass", "smtp.example.com", 587)
	require.NoError(t, err)
	assert.Equal(t, "noreply@lash.app", s.from)
}

func TestSMTPSender_SendRejectsInvalidInput(t *testing.T) {
	s, err := NewSMTPSender("noreply@lash.app", "pass", "smtp.example.com", 587)
	require.NoError(t, err)

	err = s.Send(email.SendEmailInput{To: "m@x.com", Subject: "Código"})
	assert.EqualError(t, err, "empty subject/body")
}
