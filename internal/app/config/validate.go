package config

import (
	"fmt"
	"sangha-service/internal/pkg/constvars"
	"strings"
)

// Validate fails startup instead of letting placeholder credentials leak
// into live gateway calls or production email sending.
func (c *InternalConfig) Validate(driverConfig *DriverConfig) error {
	var missing []string

	if c.PaymentGateway.Mode != constvars.GatewayModeMock && c.PaymentGateway.Mode != constvars.GatewayModeLive {
		return fmt.Errorf("PHONEPE_MODE must be %q or %q, got %q",
			constvars.GatewayModeMock, constvars.GatewayModeLive, c.PaymentGateway.Mode)
	}

	if c.PaymentGateway.Mode == constvars.GatewayModeLive {
		if c.PaymentGateway.MerchantID == "" || c.PaymentGateway.MerchantID == constvars.PhonePeSandboxMerchantID {
			missing = append(missing, "PHONEPE_MERCHANT_ID")
		}
		if c.PaymentGateway.SaltKey == "" || c.PaymentGateway.SaltKey == constvars.PhonePeSandboxSaltKey {
			missing = append(missing, "PHONEPE_SALT_KEY")
		}
		if c.PaymentGateway.SaltIndex == "" {
			missing = append(missing, "PHONEPE_SALT_INDEX")
		}
		if c.PaymentGateway.BaseUrl == "" {
			missing = append(missing, "PHONEPE_BASE_URL")
		}
	}

	if c.App.Env == "production" {
		if driverConfig.SMTP.Username == "" {
			missing = append(missing, "SMTP_USERNAME")
		}
		if driverConfig.SMTP.Password == "" {
			missing = append(missing, "SMTP_PASSWORD")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
