package constvars

// PhonePe integration constants. The checksum format is dictated by the
// gateway: hex(sha256(base64Payload + saltKey)) + "###" + saltIndex.
const (
	PhonePeChecksumSeparator  = "###"
	PhonePeVerifyHeader       = "X-VERIFY"
	PhonePePayEndpoint        = "/pg/v1/pay"
	PhonePeRedirectMode       = "REDIRECT"
	PhonePeInstrumentPayPage  = "PAY_PAGE"
	PhonePeMockPayURLFormat   = "https://pay.phonepe.com/pay/mock?transactionId=%s"
	PhonePePlaceholderMSISDN  = "9999999999"
	PhonePeSandboxMerchantID  = "MERCHANTUAT"
	PhonePeSandboxSaltKey     = "SALT_KEY"
	PhonePeSandboxSaltIndex   = "1"
	DonationSuccessPathSuffix = "/donation-success"
)

const (
	GatewayModeMock = "mock"
	GatewayModeLive = "live"
)
