// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/internal/utils"
	"github.com/pukapp/convsync/internal/wire"
	"github.com/pukapp/convsync/models"
)

// RequestIDHeader carries the id of an outgoing request so the remote side
// can recognise a retried create.
const RequestIDHeader = "X-Request-Id"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and
// request timeout, and stores appCfg.AccessToken as the bearer token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(appCfg.AccessToken)

	return a, nil
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

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ListConversations implements [ServerAdapter]. It sends
// GET /conversations?size=N[&start=cursor] and validates the page.
func (h *httpServerAdapter) ListConversations(ctx context.Context, size int, cursor *string) (models.ConversationPage, error) {
	req := h.authedRequest(ctx).SetQueryParam("size", strconv.Itoa(size))
	if cursor != nil {
		req.SetQueryParam("start", *cursor)
	}

	resp, err := req.Get(ConversationsPath)
	if err != nil {
		return models.ConversationPage{}, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConversationPage{}, err
	}

	page, err := wire.DecodeConversationPage(resp.Body())
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.ListConversations").Msg("invalid conversation page")
		return models.ConversationPage{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return page, nil
}

// GetConversation implements [ServerAdapter]. It sends GET /conversations/{id}.
func (h *httpServerAdapter) GetConversation(ctx context.Context, remoteID string) (models.ConversationSummary, error) {
	resp, err := h.authedRequest(ctx).Get(ConversationPath(remoteID))
	if err != nil {
		return models.ConversationSummary{}, fmt.Errorf("get conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConversationSummary{}, err
	}

	summary, err := wire.DecodeConversation(resp.Body())
	if err != nil {
		return models.ConversationSummary{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return summary, nil
}

// CreateConversation implements [ServerAdapter]. It sends POST /conversations.
func (h *httpServerAdapter) CreateConversation(ctx context.Context, req models.CreateConversationRequest) (models.ConversationSummary, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(ConversationsPath)
	if err != nil {
		return models.ConversationSummary{}, fmt.Errorf("create conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConversationSummary{}, err
	}

	summary, err := wire.DecodeConversation(resp.Body())
	if err != nil {
		return models.ConversationSummary{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return summary, nil
}

// UpdateConversationName implements [ServerAdapter]. It sends PUT /conversations/{id}.
func (h *httpServerAdapter) UpdateConversationName(ctx context.Context, remoteID, name string) (models.RequestResult, error) {
	return h.mutate(ctx, http.MethodPut, ConversationPath(remoteID), models.RenameConversationRequest{Name: name})
}

// AddParticipants implements [ServerAdapter]. It sends POST /conversations/{id}/members.
func (h *httpServerAdapter) AddParticipants(ctx context.Context, remoteID string, userIDs []string) (models.RequestResult, error) {
	return h.mutate(ctx, http.MethodPost, MembersPath(remoteID), models.MembersRequest{Users: userIDs})
}

// RemoveParticipant implements [ServerAdapter]. It sends
// DELETE /conversations/{id}/members/{user}.
func (h *httpServerAdapter) RemoveParticipant(ctx context.Context, remoteID, userID string) (models.RequestResult, error) {
	return h.mutate(ctx, http.MethodDelete, MemberPath(remoteID, userID), nil)
}

// SetArchived implements [ServerAdapter]. It sends PUT /conversations/{id}/self.
func (h *httpServerAdapter) SetArchived(ctx context.Context, remoteID string, archived bool) (models.RequestResult, error) {
	return h.mutate(ctx, http.MethodPut, SelfPath(remoteID), models.ArchiveRequest{Archived: archived})
}

// Do implements [ServerAdapter].
func (h *httpServerAdapter) Do(ctx context.Context, req models.OutgoingRequest) (models.RequestResult, error) {
	r := h.authedRequest(ctx).SetHeader(RequestIDHeader, req.ID)
	if len(req.Body) > 0 {
		r.SetHeader("Content-Type", "application/json").SetBody([]byte(req.Body))
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return models.RequestResult{}, fmt.Errorf("%s request: %w", req.Op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RequestResult{}, err
	}

	if req.Op == models.OperationCreate {
		summary, err := wire.DecodeConversation(resp.Body())
		if err != nil {
			return models.RequestResult{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
		}
		return models.RequestResult{RemoteID: summary.ID, Time: summary.LastModified}, nil
	}

	res, err := wire.DecodeMutationResult(resp.Body())
	if err != nil {
		return models.RequestResult{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return res, nil
}

func (h *httpServerAdapter) mutate(ctx context.Context, method, path string, body any) (models.RequestResult, error) {
	r := h.authedRequest(ctx)
	if body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		return models.RequestResult{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RequestResult{}, err
	}

	res, err := wire.DecodeMutationResult(resp.Body())
	if err != nil {
		return models.RequestResult{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return res, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
