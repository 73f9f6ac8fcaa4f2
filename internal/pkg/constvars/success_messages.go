package constvars

const (
	EmailSentSuccessfully = "Email sent successfully"
)
