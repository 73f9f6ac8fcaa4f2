package mailer

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"regexp"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/app/drivers/mailer"
	"sangha-service/internal/app/services/shared/mailqueue"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

var emailRegex = regexp.MustCompile(constvars.RegexEmail)

type mailerService struct {
	Client *mailer.SMTPClient
	Queue  *mailqueue.Service
}

// NewMailerService sends synchronously over SMTP and enqueues deferred
// mail (acknowledgments) on the RabbitMQ queue consumed by the receipt
// worker. Queue may be nil in tests.
func NewMailerService(client *mailer.SMTPClient, queue *mailqueue.Service) contracts.MailerService {
	return &mailerService{
		Client: client,
		Queue:  queue,
	}
}

func (svc *mailerService) SendEmail(ctx context.Context, message *contracts.EmailMessage) error {
	msg, err := buildMessage(svc.Client.EmailSender, message)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err = smtp.SendMail(addr, svc.Client.Auth, svc.Client.EmailSender, []string{message.To}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

// buildMessage renders a multipart/alternative MIME message carrying
// both the text and HTML bodies, so plain-text clients are not handed
// raw markup.
func buildMessage(from string, message *contracts.EmailMessage) ([]byte, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	headers := fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n", message.To, from, message.Subject)
	if message.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", message.ReplyTo)
	}
	headers += "MIME-Version: 1.0\r\n"
	headers += fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", writer.Boundary())

	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/plain; charset="UTF-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(message.TextBody)); err != nil {
		return nil, err
	}

	htmlPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/html; charset="UTF-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := htmlPart.Write([]byte(message.HTMLBody)); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return append([]byte(headers), body.Bytes()...), nil
}

func (svc *mailerService) EnqueueEmail(ctx context.Context, message *contracts.EmailMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := svc.Queue.Publish(ctx, body); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, "mail")
	}
	return nil
}

func (svc *mailerService) ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
