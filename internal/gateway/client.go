// Package gateway integrates the external payment provider: an outbound
// client that opens checkout sessions and the inbound side that verifies
// and parses completion webhooks.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/ndmitr1/EventRegistrar/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// metadataTransactionID is the metadata key the gateway echoes back in
// completion signals. It lets the webhook recompute the completion lock
// key without any lookup.
const metadataTransactionID = "transaction_id"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logger.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     log,
	}
}

type sessionRequest struct {
	AmountCents int64             `json:"amount_cents"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (c *Client) CreateSession(ctx context.Context, txn *domain.PendingTransaction, description string) (*ports.CheckoutSession, error) {
	payload, err := json.Marshal(sessionRequest{
		AmountCents: txn.AmountCents,
		Description: description,
		Metadata:    map[string]string{metadataTransactionID: txn.ID},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gateway responded %d: %s", resp.StatusCode, string(excerpt))
	}

	var body sessionResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}
	if body.ID == "" || body.URL == "" {
		return nil, fmt.Errorf("gateway session response missing id or url")
	}

	c.logger.Debug("checkout session created",
		logger.String("transaction_id", txn.ID),
		logger.String("session_id", body.ID),
	)

	return &ports.CheckoutSession{Reference: body.ID, CheckoutURL: body.URL}, nil
}
