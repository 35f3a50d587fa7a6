// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/MKhiriev/go-tracker-config/models"
	"github.com/go-resty/resty/v2"
)

// HTTPStoreConfig configures an [HTTPStore].
type HTTPStoreConfig struct {
	// BaseURL of the remote instance; the scheme defaults to http.
	BaseURL string
	// Timeout per request.
	Timeout time.Duration
	// Token is sent as a bearer token on writes.
	Token string
}

// HTTPStore is a keys.Store served by a remote instance.
type HTTPStore struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPStore validates cfg.BaseURL and builds the store.
func NewHTTPStore(cfg HTTPStoreConfig, logger *logger.Logger) (*HTTPStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &HTTPStore{client: client, token: strings.TrimSpace(cfg.Token), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetRaw reads GET /api/raw/{scope}/{name}.
func (h *HTTPStore) GetRaw(ctx context.Context, scope keys.KeyType, identity, name string) (any, bool, error) {
	var result models.RawValue

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"scope": scope.String(), "name": name}).
		SetQueryParam("identity", identity).
		SetResult(&result).
		Get("/api/raw/{scope}/{name}")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*HTTPStore.GetRaw").Str("key", name).Msg("remote request failed")
		return nil, false, fmt.Errorf("%w: get raw request: %w", ErrServiceUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, false, err
	}

	if !result.Found {
		return nil, false, nil
	}
	return result.Value, true, nil
}

// SetRaw writes through PUT /api/values/{name}.
func (h *HTTPStore) SetRaw(ctx context.Context, scope keys.KeyType, identity, name, value string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("name", name).
		SetQueryParams(slotParams(scope, identity)).
		SetBody(models.WriteRequest{Value: models.TextValue(value)}).
		Put("/api/values/{name}")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*HTTPStore.SetRaw").Str("key", name).Msg("remote request failed")
		return fmt.Errorf("%w: set request: %w", ErrServiceUnavailable, err)
	}

	return mapHTTPError(resp)
}

// DeleteRaw removes through DELETE /api/values/{name}.
func (h *HTTPStore) DeleteRaw(ctx context.Context, scope keys.KeyType, identity, name string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("name", name).
		SetQueryParams(slotParams(scope, identity)).
		Delete("/api/values/{name}")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*HTTPStore.DeleteRaw").Str("key", name).Msg("remote request failed")
		return fmt.Errorf("%w: delete request: %w", ErrServiceUnavailable, err)
	}

	return mapHTTPError(resp)
}

// ListRaw reads GET /api/raw/{scope}.
func (h *HTTPStore) ListRaw(ctx context.Context, scope keys.KeyType, identity string) (map[string]any, error) {
	var result models.RawValues

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("scope", scope.String()).
		SetQueryParam("identity", identity).
		SetResult(&result).
		Get("/api/raw/{scope}")
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrServiceUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(result.Values))
	for k, v := range result.Values {
		out[k] = v
	}
	return out, nil
}

func (h *HTTPStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

func slotParams(scope keys.KeyType, identity string) map[string]string {
	params := map[string]string{"scope": scope.String()}
	if identity != "" {
		params["identity"] = identity
	}
	return params
}
