package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorTypeKey     = "error_type"
	LoggingEventKey         = "event"
	LoggingSeverityKey      = "severity"
	LoggingTransactionIDKey = "transaction_id"
	LoggingAmountKey        = "amount"
	LoggingGatewayModeKey   = "gateway_mode"
)
