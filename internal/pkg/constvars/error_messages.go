package constvars

// Client-facing messages. These are the only strings that may reach a
// response body; anything ending up in DevMessage stays in the logs.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientPaymentInitFailed             = "Failed to initialize payment"
	ErrClientEmailSendFailed               = "Failed to send email"
	ErrClientTransactionNotFound           = "Transaction not found"
	ErrClientTooManyContactRequests        = "Too many contact requests, please try again later"
	ErrClientPaymentFieldsRequired         = "Amount, name, and email are required fields"
	ErrClientContactFieldsRequired         = "Name, email, and message are required fields"
)

// Developer messages logged alongside errors.
const (
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "failed to marshal JSON"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevGatewayTimeout            = "payment gateway call timed out"
	ErrDevGatewayNon2xx             = "payment gateway returned non-2xx status: %d"
	ErrDevGatewayMalformedResponse  = "payment gateway returned malformed response body"
	ErrDevGatewayMissingRedirectURL = "payment gateway response carries no redirect URL"
	ErrDevSMTPSendEmail             = "failed to send email through SMTP host %s"
	ErrDevMongoDBFindDocument       = "failed to find document in mongo"
	ErrDevMongoDBInsertDocument     = "failed to insert document into mongo"
	ErrDevMongoDBUpdateDocument     = "failed to update document in mongo"
	ErrDevMongoDBNoDocument         = "no document matched the given filter"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data in redis"
	ErrDevRedisIncrementValue       = "failed to increment value in redis"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevMinioPutObject            = "failed to put object into bucket %s"
	ErrDevMissingRequestID          = "request ID missing from context"
	ErrDevInvalidAmount             = "amount is not a positive number"
	ErrDevUnknown                   = "unknown"
)
