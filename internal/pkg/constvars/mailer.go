package constvars

const (
	ContactEmailSubjectFormat = "Contact Form: Message from %s"
	DonationAckSubjectFormat  = "Thank you for your donation, %s"

	EmailNotProvided = "Not provided"
)
