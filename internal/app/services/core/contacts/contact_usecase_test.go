package contacts

import (
	"context"
	"errors"
	"sangha-service/internal/app/config"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeMailer struct {
	sent    []*contracts.EmailMessage
	sendErr error
}

func (f *fakeMailer) SendEmail(ctx context.Context, message *contracts.EmailMessage) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, message)
	return nil
}

func (f *fakeMailer) EnqueueEmail(ctx context.Context, message *contracts.EmailMessage) error {
	return nil
}

func (f *fakeMailer) ValidateEmail(email string) bool { return true }

func newContactUsecase(mailer *fakeMailer) contracts.ContactUsecase {
	return NewContactUsecase(mailer, zap.NewNop(), config.Mailer{
		ContactRecipient: "info@sanghachadwam.org",
	})
}

func TestSendEmail(t *testing.T) {
	t.Run("Missing fields are rejected", func(t *testing.T) {
		mailer := &fakeMailer{}
		usecase := newContactUsecase(mailer)

		_, err := usecase.SendEmail(context.Background(), &requests.SendEmailRequest{
			Name:  "Ravi",
			Email: "ravi@example.org",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, mailer.sent)
	})

	t.Run("Invalid email is rejected", func(t *testing.T) {
		mailer := &fakeMailer{}
		usecase := newContactUsecase(mailer)

		_, err := usecase.SendEmail(context.Background(), &requests.SendEmailRequest{
			Name:    "Ravi",
			Email:   "not-an-email",
			Message: "Hello",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "email must be a valid email address", customErr.ClientMessage)
		assert.Empty(t, mailer.sent)
	})

	t.Run("Submission is delivered to the configured recipient", func(t *testing.T) {
		mailer := &fakeMailer{}
		usecase := newContactUsecase(mailer)

		response, err := usecase.SendEmail(context.Background(), &requests.SendEmailRequest{
			Name:    "Ravi",
			Email:   "ravi@example.org",
			Phone:   "+911234567890",
			Message: "I would like to volunteer.\nPlease contact me.",
		})

		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, constvars.EmailSentSuccessfully, response.Message)

		assert.Len(t, mailer.sent, 1)
		message := mailer.sent[0]
		assert.Equal(t, "info@sanghachadwam.org", message.To)
		assert.Equal(t, "ravi@example.org", message.ReplyTo)
		assert.Equal(t, "Contact Form: Message from Ravi", message.Subject)
		assert.Contains(t, message.TextBody, "+911234567890")
		assert.Contains(t, message.HTMLBody, "I would like to volunteer.<br>Please contact me.")
	})

	t.Run("Missing phone is rendered as not provided", func(t *testing.T) {
		mailer := &fakeMailer{}
		usecase := newContactUsecase(mailer)

		_, err := usecase.SendEmail(context.Background(), &requests.SendEmailRequest{
			Name:    "Ravi",
			Email:   "ravi@example.org",
			Message: "Hello",
		})

		assert.NoError(t, err)
		assert.Contains(t, mailer.sent[0].TextBody, constvars.EmailNotProvided)
	})

	t.Run("Markup in the message is escaped", func(t *testing.T) {
		mailer := &fakeMailer{}
		usecase := newContactUsecase(mailer)

		_, err := usecase.SendEmail(context.Background(), &requests.SendEmailRequest{
			Name:    "Ravi",
			Email:   "ravi@example.org",
			Message: "<script>alert(1)</script>",
		})

		assert.NoError(t, err)
		assert.NotContains(t, mailer.sent[0].HTMLBody, "<script>")
	})

	t.Run("Provider failure propagates without leaking detail", func(t *testing.T) {
		mailer := &fakeMailer{sendErr: exceptions.ErrSMTPSendEmail(errors.New("535 bad credentials"), "smtp.example.org")}
		usecase := newContactUsecase(mailer)

		_, err := usecase.SendEmail(context.Background(), &requests.SendEmailRequest{
			Name:    "Ravi",
			Email:   "ravi@example.org",
			Message: "Hello",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientEmailSendFailed, customErr.ClientMessage)
		assert.NotContains(t, customErr.ClientMessage, "535")
	})
}
