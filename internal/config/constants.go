package config

import "time"

const (
	// CanonicalCurrency is the currency all catalog prices are authored in.
	CanonicalCurrency = "USD"

	// External call timeouts
	GatewayTimeout = 30 * time.Second
	RatesTimeout   = 10 * time.Second
	NotifyTimeout  = 10 * time.Second

	// Server timeouts
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 15 * time.Second

	// Telegram message limit
	MaxMessageLen = 4096
)

// ZeroDecimalCurrencies have no minor unit: amounts are rounded to whole
// units and passed to gateways unscaled.
var ZeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true,
	"KMF": true, "KRW": true, "MGA": true, "PYG": true, "RWF": true,
	"UGX": true, "VND": true, "VUV": true, "XAF": true, "XOF": true,
	"XPF": true,
}
