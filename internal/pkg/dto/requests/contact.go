package requests

// SendEmailRequest is the payload accepted by /api/send-email.
type SendEmailRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}
