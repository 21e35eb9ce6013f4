package square

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
)

const (
	HeaderSignature       = "X-Square-Hmacsha256-Signature"
	HeaderLegacySignature = "X-Square-Signature"
)

// Verifier checks webhook signatures against the shared secret.
// An empty secret disables verification: every request is accepted and a
// warning is logged each time.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Enabled() bool {
	return len(v.secret) > 0
}

// Verify accepts base64(HMAC-SHA256(secret, notificationURL+body)) and, as a
// fallback for older deliveries, base64(HMAC-SHA256(secret, body)).
func (v *Verifier) Verify(signature string, body []byte, notificationURL string) bool {
	if !v.Enabled() {
		slog.Warn("webhook signature secret not configured, skipping signature verification")
		return true
	}
	if signature == "" {
		slog.Warn("webhook signature header missing but secret is configured")
		return false
	}

	if notificationURL != "" {
		withURL := make([]byte, 0, len(notificationURL)+len(body))
		withURL = append(withURL, notificationURL...)
		withURL = append(withURL, body...)
		if v.matches(signature, withURL) {
			return true
		}
	}

	if v.matches(signature, body) {
		return true
	}

	slog.Warn("webhook signature mismatch", "body_bytes", len(body), "notification_url", notificationURL)
	return false
}

func (v *Verifier) Sign(message []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(message)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (v *Verifier) matches(signature string, message []byte) bool {
	return hmac.Equal([]byte(v.Sign(message)), []byte(signature))
}
