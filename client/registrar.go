package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/focusdeck/focusdeck-push-server/domain"
)

// HttpRegistrar talks to the push server's notification endpoints.
type HttpRegistrar struct {
	baseUrl string
	client  *http.Client
}

func NewHttpRegistrar(baseUrl string) *HttpRegistrar {
	return &HttpRegistrar{
		baseUrl: baseUrl,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type registerBody struct {
	UserId     string `json:"userId"`
	Token      string `json:"token"`
	DeviceType string `json:"deviceType,omitempty"`
	Browser    string `json:"browser,omitempty"`
}

type unregisterBody struct {
	UserId string `json:"userId"`
	Token  string `json:"token"`
}

func (r *HttpRegistrar) Register(ctx context.Context, userId string, token domain.DeviceToken) error {
	return r.post(ctx, "/notifications/register", registerBody{
		UserId:     userId,
		Token:      token.Token,
		DeviceType: string(token.DeviceType),
		Browser:    token.Browser,
	})
}

func (r *HttpRegistrar) Unregister(ctx context.Context, userId, token string) error {
	return r.post(ctx, "/notifications/unregister", unregisterBody{
		UserId: userId,
		Token:  token,
	})
}

func (r *HttpRegistrar) post(ctx context.Context, path string, body any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseUrl+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push server returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
