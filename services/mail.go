package services

import (
	"fmt"
	"net/smtp"
)

// SMTPConfig holds outbound mail configuration.
type SMTPConfig struct {
	Server     string
	Port       string
	Sender     string
	Password   string
	SenderName string
}

// SMTPMailer delivers magic-link emails over plain SMTP.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Server == "" {
		cfg.Server = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.SenderName == "" {
		cfg.SenderName = "ClubCaddy"
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendMagicLink(to, link string) error {
	subject := "Your ClubCaddy sign-in link"
	htmlBody := buildMagicLinkHTML(link)
	from := fmt.Sprintf("%s <%s>", m.cfg.SenderName, m.cfg.Sender)

	headers := map[string]string{
		"From":                      from,
		"To":                        to,
		"Subject":                   subject,
		"MIME-Version":              "1.0",
		"Content-Type":              "text/html; charset=UTF-8",
		"Content-Transfer-Encoding": "8bit",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	auth := smtp.PlainAuth("", m.cfg.Sender, m.cfg.Password, m.cfg.Server)
	if err := smtp.SendMail(m.cfg.Server+":"+m.cfg.Port, auth, m.cfg.Sender, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send magic link email: %w", err)
	}
	return nil
}

func buildMagicLinkHTML(link string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Sign in to ClubCaddy</h2>
    <p>Click the button below to sign in. The link is valid for 15 minutes
    and can be used once.</p>
    <p>
      <a href="%s" style="display:inline-block;padding:12px 24px;background:#1a7f37;color:#fff;text-decoration:none;border-radius:6px;">
        Sign in
      </a>
    </p>
    <p>If the button does not work, copy this address into your browser:</p>
    <p><a href="%s">%s</a></p>
    <p>If you did not request this email you can safely ignore it.</p>
  </body>
</html>`, link, link, link)
}
