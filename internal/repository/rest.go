package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jarenas/migasto/internal/model"
)

// TokenFunc supplies the bearer token for an outgoing request. An
// empty result sends the request unauthenticated.
type TokenFunc func() string

// RESTStore talks to the MiGasto backend over its JSON REST API.
type RESTStore struct {
	baseURL string
	token   TokenFunc
	client  *http.Client
	log     zerolog.Logger
}

// NewRESTStore creates a store client for the given base URL.
func NewRESTStore(baseURL string, token TokenFunc, log zerolog.Logger) *RESTStore {
	if token == nil {
		token = func() string { return "" }
	}
	return &RESTStore{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("component", "store").Logger(),
	}
}

func (s *RESTStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	data, err := s.do(ctx, http.MethodGet, "/transactions", nil)
	if err != nil {
		return nil, err
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transactions: %w", err)
	}
	return transactions, nil
}

func (s *RESTStore) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	payload := map[string]any{
		"type":        transaction.Type,
		"category":    transaction.Category,
		"amount":      transaction.Amount,
		"date":        transaction.Date,
		"description": transaction.Description,
	}

	data, err := s.do(ctx, http.MethodPost, "/transactions", payload)
	if err != nil {
		return err
	}

	// The server assigns the ID; pick it up from the response when one
	// comes back, but do not fail the create over a body we cannot read.
	var created model.Transaction
	if len(data) > 0 && json.Unmarshal(data, &created) == nil && created.ID != "" {
		transaction.ID = created.ID
	}
	return nil
}

func (s *RESTStore) DeleteTransaction(ctx context.Context, id string) error {
	_, err := s.do(ctx, http.MethodDelete, "/transactions/"+id, nil)
	return err
}

func (s *RESTStore) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The token is re-read on every request so a refreshed login takes
	// effect without restarting the dashboard.
	if token := s.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error().Err(err).Str("request_id", requestID).Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	s.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("store request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return data, nil
}
