package contacts

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sangha-service/internal/app/config"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/dto/requests"
	"sangha-service/internal/pkg/dto/responses"
	"sangha-service/internal/pkg/exceptions"
	"sangha-service/internal/pkg/utils"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type contactUsecase struct {
	MailerService contracts.MailerService
	Log           *zap.Logger
	MailerConfig  config.Mailer
}

func NewContactUsecase(mailerService contracts.MailerService, logger *zap.Logger, mailerConfig config.Mailer) contracts.ContactUsecase {
	return &contactUsecase{
		MailerService: mailerService,
		Log:           logger,
		MailerConfig:  mailerConfig,
	}
}

// SendEmail forwards a contact-form submission to the configured
// recipient inbox. Reply-To is set to the submitter so a human reply
// goes straight back without exposing the sender account.
func (uc *contactUsecase) SendEmail(ctx context.Context, request *requests.SendEmailRequest) (*responses.SendEmailResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && fieldErrors[0].Tag() != "required" {
			return nil, exceptions.ErrInputValidation(err)
		}
		return nil, exceptions.ErrMissingRequiredContactFields(err)
	}
	if !uc.MailerService.ValidateEmail(request.Email) {
		return nil, exceptions.ErrInputValidation(nil)
	}

	phone := request.Phone
	if phone == "" {
		phone = constvars.EmailNotProvided
	}

	textBody := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
		request.Name, request.Email, phone, request.Message,
	)
	htmlMessage := strings.ReplaceAll(html.EscapeString(request.Message), "\n", "<br>")
	htmlBody := fmt.Sprintf(
		"<h3>New contact form submission</h3><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(request.Name), html.EscapeString(request.Email), html.EscapeString(phone), htmlMessage,
	)

	message := &contracts.EmailMessage{
		To:       uc.MailerConfig.ContactRecipient,
		ReplyTo:  request.Email,
		Subject:  fmt.Sprintf(constvars.ContactEmailSubjectFormat, request.Name),
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
	if err := uc.MailerService.SendEmail(ctx, message); err != nil {
		return nil, err
	}

	return &responses.SendEmailResponse{
		Success: true,
		Message: constvars.EmailSentSuccessfully,
	}, nil
}
