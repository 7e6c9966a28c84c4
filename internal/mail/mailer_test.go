package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plushealth/plushealth-server/internal/config"
	"github.com/plushealth/plushealth-server/internal/testutil"
)

func TestNoopMailer(t *testing.T) {
	m := NewNoopMailer(testutil.MakeNoopLogger())

	require.NoError(t, m.SendVerification(context.Background(), "a@b.c", "Ana", "tok"))
	require.NoError(t, m.SendDeletionConfirmation(context.Background(), "a@b.c", "Ana", "tok"))
}

func TestNewSMTPMailer(t *testing.T) {
	m, err := NewSMTPMailer(config.SMTP{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "no-reply@plushealth.app",
	}, "https://plushealth.app")
	require.NoError(t, err)
	require.NotNil(t, m.client)
	require.Equal(t, "no-reply@plushealth.app", m.from)
	require.Equal(t, "https://plushealth.app", m.baseURL)
}
