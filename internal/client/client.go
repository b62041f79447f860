// Package client talks to the chat backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
)

// ErrDelivery wraps every failure to obtain a reply: transport errors,
// non-2xx statuses and undecodable bodies alike.
var ErrDelivery = errors.New("chat delivery failed")

const (
	chatPath   = "/api/chat"
	modelsPath = "/api/models"
)

// Client posts chat requests to a backend.
type Client struct {
	baseURL string
	httpDo  *http.Client
}

// New creates a client for baseURL. A nil httpClient means http.DefaultClient,
// which never times out.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpDo: httpClient}
}

type chatReply struct {
	Response *string `json:"response"`
}

// Chat sends one request and returns the server reply.
func (c *Client) Chat(ctx context.Context, req chat.Request) (chat.Response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return chat.Response{}, fmt.Errorf("%w: marshal request: %v", ErrDelivery, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(data))
	if err != nil {
		return chat.Response{}, fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var out chatReply
	if err := c.do(httpReq, &out); err != nil {
		return chat.Response{}, err
	}
	if out.Response == nil {
		return chat.Response{}, fmt.Errorf("%w: response field missing", ErrDelivery)
	}
	return chat.Response{Response: *out.Response}, nil
}

// Models fetches the selectable model list.
func (c *Client) Models(ctx context.Context) ([]chat.ModelInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+modelsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	var out chat.ModelList
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return out.Models, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: http %d", ErrDelivery, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrDelivery, err)
	}
	return nil
}
