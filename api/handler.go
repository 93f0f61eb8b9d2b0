package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/focusdeck/focusdeck-push-server/dispatch"
	"github.com/focusdeck/focusdeck-push-server/domain"
)

type handler struct {
	dispatch dispatch.Dispatch
	metric   metric.Metric
}

type registerRequest struct {
	UserId     string `json:"userId" validate:"required"`
	Token      string `json:"token" validate:"required"`
	DeviceType string `json:"deviceType"`
	Browser    string `json:"browser"`
}

type unregisterRequest struct {
	UserId string `json:"userId" validate:"required"`
	Token  string `json:"token" validate:"required"`
}

type sendRequest struct {
	UserId             string            `json:"userId" validate:"required"`
	Title              string            `json:"title" validate:"required"`
	Body               string            `json:"body" validate:"required"`
	Type               string            `json:"type"`
	Icon               string            `json:"icon"`
	Badge              string            `json:"badge"`
	RequireInteraction bool              `json:"requireInteraction"`
	Data               map[string]string `json:"data"`
	Tokens             []string          `json:"tokens"`
}

type broadcastRequest struct {
	UserIds            []string          `json:"userIds" validate:"required,min=1"`
	Title              string            `json:"title" validate:"required"`
	Body               string            `json:"body" validate:"required"`
	Type               string            `json:"type"`
	Icon               string            `json:"icon"`
	RequireInteraction bool              `json:"requireInteraction"`
	Data               map[string]string `json:"data"`
}

// messageEnvelope is the generic response wrapper.
type messageEnvelope struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type sendEnvelope struct {
	Success bool `json:"success"`
	domain.SendResult
}

type broadcastEnvelope struct {
	Success bool `json:"success"`
	Queued  int  `json:"queued"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageEnvelope{Success: true, Message: "ok"})
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var err error
	st := time.Now()
	defer func() {
		h.requestLog(r, "api.register", st, err)
	}()
	var req registerRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err = validateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.dispatch.Register(r.Context(), req.UserId, domain.DeviceToken{
		Token:      req.Token,
		DeviceType: domain.DeviceType(req.DeviceType),
		Browser:    req.Browser,
		Timestamp:  time.Now(),
	}); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageEnvelope{Success: true, Message: "token registered"})
}

func (h *handler) unregister(w http.ResponseWriter, r *http.Request) {
	var err error
	st := time.Now()
	defer func() {
		h.requestLog(r, "api.unregister", st, err)
	}()
	var req unregisterRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err = validateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.dispatch.Unregister(r.Context(), req.UserId, req.Token); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageEnvelope{Success: true, Message: "token unregistered"})
}

func (h *handler) send(w http.ResponseWriter, r *http.Request) {
	var err error
	st := time.Now()
	defer func() {
		h.requestLog(r, "api.send", st, err)
	}()
	var req sendRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err = validateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.dispatch.Send(r.Context(), dispatch.SendRequest{
		UserId: req.UserId,
		Payload: domain.Payload{
			Type:               domain.NotificationType(req.Type),
			Title:              req.Title,
			Body:               req.Body,
			Icon:               req.Icon,
			Badge:              req.Badge,
			RequireInteraction: req.RequireInteraction,
			Data:               req.Data,
		},
		Tokens: req.Tokens,
	})
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sendEnvelope{Success: true, SendResult: res})
}

func (h *handler) broadcast(w http.ResponseWriter, r *http.Request) {
	var err error
	st := time.Now()
	defer func() {
		h.requestLog(r, "api.broadcast", st, err)
	}()
	var req broadcastRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err = validateStruct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	queued, err := h.dispatch.Broadcast(r.Context(), req.UserIds, domain.Payload{
		Type:               domain.NotificationType(req.Type),
		Title:              req.Title,
		Body:               req.Body,
		Icon:               req.Icon,
		RequireInteraction: req.RequireInteraction,
		Data:               req.Data,
	})
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, broadcastEnvelope{Success: true, Queued: queued})
}

func (h *handler) requestLog(r *http.Request, rpc string, st time.Time, err error) {
	if h.metric == nil {
		return
	}
	h.metric.RequestLog(r.Context(), rpc,
		metric.TotalDur(time.Since(st)),
		zap.String("addr", r.RemoteAddr),
		zap.Error(err),
	)
}

func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dispatch.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, dispatch.ErrNoTokens):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		// never leak internals to the caller
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageEnvelope{Error: msg})
}
