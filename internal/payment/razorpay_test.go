package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
)

func TestVerifySignature(t *testing.T) {
	g := NewRazorpay(&config.Config{
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "secret123",
	})

	mac := hmac.New(sha256.New, []byte("secret123"))
	mac.Write([]byte("order_abc|pay_def"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, g.VerifySignature("order_abc", "pay_def", valid))
	assert.False(t, g.VerifySignature("order_abc", "pay_def", "forged"))
	assert.False(t, g.VerifySignature("order_abc", "pay_other", valid))
}
