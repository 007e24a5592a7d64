package mail

import (
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer is the outbound email collaborator. Delivery failure is reported
// to the caller; it never rolls back the write that triggered it.
type Mailer interface {
	Send(message Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type SMTPMailer struct {
	config SMTPConfig
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (mailer *SMTPMailer) Send(message Message) error {
	msg := gomail.NewMsg()
	if err := msg.From(mailer.config.Sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(message.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.Text)
	if message.HTML != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, message.HTML)
	}

	client, err := gomail.NewClient(
		mailer.config.Host,
		gomail.WithPort(mailer.config.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(mailer.config.Username),
		gomail.WithPassword(mailer.config.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", message.To, err)
	}
	return nil
}
