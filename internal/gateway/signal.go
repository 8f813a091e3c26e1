package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Gateway-Signature"

var ErrBadSignature = errors.New("webhook signature mismatch")

// Verifier authenticates webhook bodies. An empty secret rejects every
// signal: a deployment must configure the shared secret before
// completions are accepted.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(body []byte, signature string) error {
	if len(v.secret) == 0 || signature == "" {
		return ErrBadSignature
	}

	sig, err := hex.DecodeString(signature)
	if err != nil {
		return ErrBadSignature
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return ErrBadSignature
	}

	return nil
}

// Sign produces the signature Verify expects. Tests and local gateway
// stubs use it.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type signalPayload struct {
	Type string `json:"type"`
	Data struct {
		SessionID string            `json:"session_id"`
		Status    string            `json:"status"`
		Metadata  map[string]string `json:"metadata"`
	} `json:"data"`
}

// ParseSignal converts a verified webhook body into the provider
// independent completion signal. Legacy payloads without metadata still
// parse; the transaction is then located by session reference.
func ParseSignal(body []byte) (domain.CompletionSignal, error) {
	var p signalPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.CompletionSignal{}, fmt.Errorf("%w: malformed webhook payload", domain.ErrValidation)
	}
	if p.Data.SessionID == "" {
		return domain.CompletionSignal{}, fmt.Errorf("%w: webhook payload missing session_id", domain.ErrValidation)
	}

	return domain.CompletionSignal{
		TransactionID: p.Data.Metadata[metadataTransactionID],
		ExternalRef:   p.Data.SessionID,
		Succeeded:     p.Data.Status == "succeeded",
	}, nil
}
