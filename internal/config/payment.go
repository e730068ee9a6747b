package config

import "fmt"

// PaymentConfig holds payment gateway configuration.
type PaymentConfig struct {
	// KeyID is the public gateway key identifier presented to clients.
	KeyID string
	// KeySecret is the shared secret used for callback signature verification.
	KeySecret string
	// Currency is the ISO currency code for all payment orders.
	Currency string
}

// LoadPaymentConfigFromEnv loads payment configuration from environment variables.
func LoadPaymentConfigFromEnv() PaymentConfig {
	return PaymentConfig{
		KeyID:     GetEnv("PAYMENT_KEY_ID", ""),
		KeySecret: GetEnv("PAYMENT_KEY_SECRET", ""),
		Currency:  GetEnv("PAYMENT_CURRENCY", "INR"),
	}
}

// Validate validates payment configuration.
func (c PaymentConfig) Validate() error {
	if c.KeySecret == "" {
		return fmt.Errorf("PAYMENT_KEY_SECRET is required")
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("invalid PAYMENT_CURRENCY: %s (must be a 3-letter ISO code)", c.Currency)
	}
	return nil
}
