package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"engagement-scheduler/core/config"
	"engagement-scheduler/core/errors"
	"engagement-scheduler/core/logger"
)

// StoreRepositoryInterface is the contract against the external JSON
// collection store: a fixed collection endpoint plus /{id} for item
// operations. Records pass through as raw documents so that a full-record
// PUT preserves fields this service does not model.
type StoreRepositoryInterface interface {
	ListRaw(ctx context.Context) ([]map[string]any, *errors.AppError)
	GetRaw(ctx context.Context, id string) (map[string]any, *errors.AppError)
	Create(ctx context.Context, payload map[string]any) (map[string]any, *errors.AppError)
	Put(ctx context.Context, id string, payload map[string]any) (map[string]any, *errors.AppError)
	Delete(ctx context.Context, id string) *errors.AppError
}

// StoreRepository talks HTTP to the external collection store.
type StoreRepository struct {
	baseURL string
	client  *http.Client
}

func NewStoreRepository(cfg config.StoreConfig) *StoreRepository {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &StoreRepository{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *StoreRepository) ListRaw(ctx context.Context) ([]map[string]any, *errors.AppError) {
	var docs []map[string]any
	if appErr := r.do(ctx, http.MethodGet, r.baseURL, nil, &docs); appErr != nil {
		return nil, appErr
	}
	return docs, nil
}

func (r *StoreRepository) GetRaw(ctx context.Context, id string) (map[string]any, *errors.AppError) {
	var doc map[string]any
	if appErr := r.do(ctx, http.MethodGet, r.itemURL(id), nil, &doc); appErr != nil {
		return nil, appErr
	}
	return doc, nil
}

func (r *StoreRepository) Create(ctx context.Context, payload map[string]any) (map[string]any, *errors.AppError) {
	var doc map[string]any
	if appErr := r.do(ctx, http.MethodPost, r.baseURL, payload, &doc); appErr != nil {
		return nil, appErr
	}
	return doc, nil
}

func (r *StoreRepository) Put(ctx context.Context, id string, payload map[string]any) (map[string]any, *errors.AppError) {
	var doc map[string]any
	if appErr := r.do(ctx, http.MethodPut, r.itemURL(id), payload, &doc); appErr != nil {
		return nil, appErr
	}
	return doc, nil
}

func (r *StoreRepository) Delete(ctx context.Context, id string) *errors.AppError {
	return r.do(ctx, http.MethodDelete, r.itemURL(id), nil, nil)
}

func (r *StoreRepository) itemURL(id string) string {
	return r.baseURL + "/" + id
}

// do runs one round-trip against the store. Transport failures and non-2xx
// responses map to ErrNetwork, except 404 which maps to ErrNotFound. There
// is no retry; the caller surfaces the error and the user retries.
func (r *StoreRepository) do(ctx context.Context, method, url string, payload map[string]any, out any) *errors.AppError {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Error("StoreRepository:do:Marshal:Error", "error", err, "method", method)
			return errors.NewAppError(errors.ErrInternalServer, "failed to encode request body", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		logger.Error("StoreRepository:do:NewRequest:Error", "error", err, "method", method, "url", url)
		return errors.NewAppError(errors.ErrInternalServer, "failed to create request", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		logger.Error("StoreRepository:do:DoRequest:Error", "error", err, "method", method, "url", url)
		return errors.NewAppError(errors.ErrNetwork, "collection store is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewAppError(errors.ErrNotFound, "record not found in collection store", nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		logger.Error("StoreRepository:do:APIError", "status", resp.StatusCode, "method", method, "url", url, "body", string(raw))
		return errors.NewAppError(errors.ErrNetwork, fmt.Sprintf("collection store error: %d %s", resp.StatusCode, resp.Status), nil)
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("StoreRepository:do:ReadBody:Error", "error", err, "method", method)
		return errors.NewAppError(errors.ErrNetwork, "failed to read store response", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Error("StoreRepository:do:Unmarshal:Error", "error", err, "method", method)
		return errors.NewAppError(errors.ErrInvalidRequestData, "unrecognized response shape from collection store", err)
	}
	return nil
}
