package mail

import (
	"io"

	"gopkg.in/gomail.v2"
	"cep.backend/internal/config"
)

// Attachment is a file attached to an outbound message
type Attachment struct {
	Filename string
	MIMEType string
	Content  []byte
}

// Message is a fully rendered outbound email
type Message struct {
	To         []string
	Subject    string
	HTML       string
	Attachment *Attachment
}

// Sender delivers rendered messages. The SMTP transport is opaque to
// callers; usecases only ever enqueue outbox rows and the dispatcher
// only ever calls Send.
type Sender interface {
	Send(msg *Message) error
}

// SMTPSender implements Sender over SMTP
type SMTPSender struct {
	dialer      *gomail.Dialer
	fromName    string
	fromAddress string
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(smtpCfg config.SMTPConfig, mailCfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer:      gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.Username, smtpCfg.Password),
		fromName:    mailCfg.FromName,
		fromAddress: mailCfg.FromAddress,
	}
}

// Send delivers a single message
func (s *SMTPSender) Send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if msg.Attachment != nil {
		content := msg.Attachment.Content
		m.Attach(msg.Attachment.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {msg.Attachment.MIMEType},
			}),
		)
	}

	return s.dialer.DialAndSend(m)
}
