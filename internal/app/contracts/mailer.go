package contracts

import (
	"context"
)

// EmailMessage is a single outbound email. ReplyTo is optional.
type EmailMessage struct {
	To       string `json:"to"`
	ReplyTo  string `json:"reply_to,omitempty"`
	Subject  string `json:"subject"`
	TextBody string `json:"text_body"`
	HTMLBody string `json:"html_body"`
}

type MailerService interface {
	SendEmail(ctx context.Context, message *EmailMessage) error
	EnqueueEmail(ctx context.Context, message *EmailMessage) error
	ValidateEmail(email string) bool
}
