package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        int    `env:"PORT" envDefault:"3000"`
	PublicURL   string `env:"PUBLIC_URL" envDefault:"http://localhost:3000"`

	// Currency rates
	RatesURL string `env:"RATES_API_URL" envDefault:"https://open.er-api.com/v6/latest/USD"`

	// Payment: Razorpay
	RazorpayEnabled   bool   `env:"RAZORPAY_ENABLED" envDefault:"true"`
	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET"`
	RazorpayURL       string `env:"RAZORPAY_API_URL" envDefault:"https://api.razorpay.com/v1"`

	// Payment: Stripe
	StripeEnabled   bool   `env:"STRIPE_ENABLED" envDefault:"true"`
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	StripeURL       string `env:"STRIPE_API_URL" envDefault:"https://api.stripe.com/v1"`

	// Database pool
	DBMaxConns int32 `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMinConns int32 `env:"DB_MIN_CONNS" envDefault:"5"`

	// Telegram ops logging
	BotToken              string `env:"BOT_TOKEN"`
	LogTelegramChatID     int64  `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError         int    `env:"LOG_TOPIC_ERROR"`
	LogTopicPurchase      int    `env:"LOG_TOPIC_PURCHASE"`
	LogTopicMembership    int    `env:"LOG_TOPIC_MEMBERSHIP"`
	LogTopicCoupon        int    `env:"LOG_TOPIC_COUPON"`
	LogTopicReconcileMiss int    `env:"LOG_TOPIC_RECONCILE_MISS"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SuccessURL is the redirect target hosted-checkout gateways send the browser
// back to. Query parameters are appended by the gateway.
func (c *Config) SuccessURL() string {
	return c.PublicURL + "/payment/success"
}

func (c *Config) CancelURL() string {
	return c.PublicURL + "/payment/cancelled"
}
