package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/focusdeck/focusdeck-push-server/dispatch"
	"github.com/focusdeck/focusdeck-push-server/dispatch/mock_dispatch"
	"github.com/focusdeck/focusdeck-push-server/domain"
)

func TestHandler_Health(t *testing.T) {
	fx := newFixture(t)
	rec := fx.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t)
		fx.dispatch.EXPECT().Register(gomock.Any(), "u1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, token domain.DeviceToken) error {
				assert.Equal(t, "t1", token.Token)
				assert.Equal(t, domain.DeviceTypeDesktop, token.DeviceType)
				assert.Equal(t, "firefox", token.Browser)
				assert.False(t, token.Timestamp.IsZero())
				return nil
			})
		rec := fx.do(t, http.MethodPost, "/notifications/register", map[string]any{
			"userId":     "u1",
			"token":      "t1",
			"deviceType": "desktop",
			"browser":    "firefox",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var env messageEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.True(t, env.Success)
	})
	t.Run("missing token is a validation error", func(t *testing.T) {
		fx := newFixture(t)
		rec := fx.do(t, http.MethodPost, "/notifications/register", map[string]any{
			"userId": "u1",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("malformed body", func(t *testing.T) {
		fx := newFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/notifications/register", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		fx.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("internal error is not leaked", func(t *testing.T) {
		fx := newFixture(t)
		fx.dispatch.EXPECT().Register(gomock.Any(), "u1", gomock.Any()).Return(errors.New("mongo down"))
		rec := fx.do(t, http.MethodPost, "/notifications/register", map[string]any{
			"userId": "u1",
			"token":  "t1",
		})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "mongo")
	})
}

func TestHandler_Unregister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t)
		fx.dispatch.EXPECT().Unregister(gomock.Any(), "u1", "t1").Return(nil)
		rec := fx.do(t, http.MethodPost, "/notifications/unregister", map[string]any{
			"userId": "u1",
			"token":  "t1",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})
	t.Run("user not found", func(t *testing.T) {
		fx := newFixture(t)
		fx.dispatch.EXPECT().Unregister(gomock.Any(), "missing", "t1").Return(dispatch.ErrUserNotFound)
		rec := fx.do(t, http.MethodPost, "/notifications/unregister", map[string]any{
			"userId": "missing",
			"token":  "t1",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Send(t *testing.T) {
	t.Run("per-token results returned", func(t *testing.T) {
		fx := newFixture(t)
		var sendRes domain.SendResult
		sendRes.Add("tA", nil)
		sendRes.Add("tB", errors.New("registration-token-not-registered"))
		fx.dispatch.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dispatch.SendRequest) (domain.SendResult, error) {
				assert.Equal(t, "u1", req.UserId)
				assert.Equal(t, domain.TypeTimerComplete, req.Payload.Type)
				assert.True(t, req.Payload.RequireInteraction)
				return sendRes, nil
			})
		rec := fx.do(t, http.MethodPost, "/notifications/send", map[string]any{
			"userId":             "u1",
			"title":              "Done",
			"body":               "25 min",
			"type":               "timer_complete",
			"requireInteraction": true,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var env sendEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.Equal(t, 1, env.SuccessCount)
		assert.Equal(t, 1, env.FailureCount)
		require.Len(t, env.Results, 2)
		assert.Equal(t, "tA", env.Results[0].Token)
		assert.False(t, env.Results[1].Success)
	})
	t.Run("no tokens", func(t *testing.T) {
		fx := newFixture(t)
		fx.dispatch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.SendResult{}, dispatch.ErrNoTokens)
		rec := fx.do(t, http.MethodPost, "/notifications/send", map[string]any{
			"userId": "u1",
			"title":  "a",
			"body":   "b",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("user not found", func(t *testing.T) {
		fx := newFixture(t)
		fx.dispatch.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.SendResult{}, dispatch.ErrUserNotFound)
		rec := fx.do(t, http.MethodPost, "/notifications/send", map[string]any{
			"userId": "missing",
			"title":  "a",
			"body":   "b",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Broadcast(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t)
		fx.dispatch.EXPECT().Broadcast(gomock.Any(), []string{"u1", "u2"}, gomock.Any()).Return(2, nil)
		rec := fx.do(t, http.MethodPost, "/notifications/broadcast", map[string]any{
			"userIds": []string{"u1", "u2"},
			"title":   "Daily review",
			"body":    "Check your habits",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var env broadcastEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, 2, env.Queued)
	})
	t.Run("empty user list", func(t *testing.T) {
		fx := newFixture(t)
		rec := fx.do(t, http.MethodPost, "/notifications/broadcast", map[string]any{
			"userIds": []string{},
			"title":   "a",
			"body":    "b",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

type fixture struct {
	dispatch *mock_dispatch.MockDispatch
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	fx := &fixture{
		dispatch: mock_dispatch.NewMockDispatch(ctrl),
	}
	s := &api{handler: &handler{dispatch: fx.dispatch}}
	fx.router = s.router()
	return fx
}

func (fx *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)
	return rec
}
