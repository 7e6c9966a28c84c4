package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/plushealth/plushealth-server/internal/config"
)

var _ Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends messages through an SMTP relay.
type SMTPMailer struct {
	client  *gomail.Client
	from    string
	baseURL string
}

// NewSMTPMailer creates an SMTPMailer from SMTP configuration. baseURL is the
// externally reachable server address embedded in the emailed links.
func NewSMTPMailer(cfg config.SMTP, baseURL string) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPMailer{
		client:  client,
		from:    cfg.From,
		baseURL: baseURL,
	}, nil
}

// SendVerification emails the link confirming control of the address.
func (m *SMTPMailer) SendVerification(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/verificar-email?token=%s", m.baseURL, token)
	body := fmt.Sprintf(
		"Olá %s,\n\nConfirme seu email no Plus Health acessando o link abaixo:\n\n%s\n\nSe você não criou esta conta, ignore esta mensagem.\n",
		name, link)

	return m.send(ctx, to, "Plus Health - confirme seu email", body)
}

// SendDeletionConfirmation emails the link confirming account deletion.
func (m *SMTPMailer) SendDeletionConfirmation(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/confirmar-exclusao?token=%s", m.baseURL, token)
	body := fmt.Sprintf(
		"Olá %s,\n\nConfirme a exclusão da sua conta Plus Health acessando o link abaixo:\n\n%s\n\nEsta ação é permanente e remove todos os seus dados.\n",
		name, link)

	return m.send(ctx, to, "Plus Health - confirme a exclusão da conta", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
