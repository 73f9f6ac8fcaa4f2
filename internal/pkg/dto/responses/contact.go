package responses

type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
