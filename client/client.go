// Package client implements the browser-side notification lifecycle: feature
// detection, the permission state machine, token registration against the
// push server and local notification display.
//
// Every operation degrades to a boolean. A platform or network failure is
// logged and reported as false, it never propagates as an error to the
// caller, so the surrounding app keeps working without notifications.
package client

import (
	"context"
	"crypto/rand"
	"sync"

	"github.com/anyproto/any-sync/app/logger"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	"github.com/focusdeck/focusdeck-push-server/domain"
)

const CName = "client"

var log = logger.NewNamed(CName)

// Status is the manager's permission state machine.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusUnsupported   Status = "unsupported"
	StatusDefault       Status = "default"
	StatusGranted       Status = "granted"
	StatusDenied        Status = "denied"
)

// Platform abstracts the browser notification surface so the manager can be
// tested without one.
type Platform interface {
	// Supported reports whether the notification and push APIs exist at all.
	Supported() bool
	// Permission returns the current permission without prompting.
	Permission() Status
	// RequestPermission prompts the user and returns the resulting permission.
	RequestPermission(ctx context.Context) (Status, error)
	// Token obtains the current push subscription token.
	Token(ctx context.Context) (string, error)
	// Show displays a notification locally, without a server round-trip.
	Show(ctx context.Context, p domain.Payload) error
}

// Registrar syncs the device token with the push server.
type Registrar interface {
	Register(ctx context.Context, userId string, token domain.DeviceToken) error
	Unregister(ctx context.Context, userId, token string) error
}

type Params struct {
	UserId     string
	DeviceType domain.DeviceType
	Browser    string
}

type Manager struct {
	mu        sync.Mutex
	status    Status
	token     string
	platform  Platform
	registrar Registrar
	params    Params
	// instanceId correlates log lines from one manager lifetime
	instanceId string
}

func NewManager(platform Platform, registrar Registrar, params Params) *Manager {
	return &Manager{
		status:     StatusUninitialized,
		platform:   platform,
		registrar:  registrar,
		params:     params,
		instanceId: newInstanceId(),
	}
}

func newInstanceId() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return base58.Encode(b)
}

// Initialize probes the platform and settles the state machine into one of
// unsupported, default, granted or denied. On an already-granted device the
// token is refreshed silently. It reports whether notifications can possibly
// be used; it never prompts.
func (m *Manager) Initialize(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.platform.Supported() {
		m.status = StatusUnsupported
		log.Info("notifications unsupported", zap.String("instanceId", m.instanceId))
		return false
	}
	m.status = m.platform.Permission()
	log.Debug("initialized", zap.String("instanceId", m.instanceId), zap.String("status", string(m.status)))
	if m.status == StatusGranted {
		// permission already given: refresh the token silently, no prompt
		token, err := m.platform.Token(ctx)
		if err != nil || token == "" {
			log.Warn("silent token refresh failed", zap.String("instanceId", m.instanceId), zap.Error(err))
			return false
		}
		m.token = token
	}
	return m.status != StatusDenied
}

// RequestPermissionAndRegister prompts for permission if needed, then obtains
// a token and registers it with the server. True means the device is fully
// registered and ready to receive pushes.
func (m *Manager) RequestPermissionAndRegister(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.status {
	case StatusUninitialized, StatusUnsupported:
		return false
	case StatusDenied:
		return false
	}
	if m.status == StatusDefault {
		status, err := m.platform.RequestPermission(ctx)
		if err != nil {
			log.Warn("permission request failed", zap.String("instanceId", m.instanceId), zap.Error(err))
			return false
		}
		m.status = status
		if status != StatusGranted {
			return false
		}
	}
	token, err := m.platform.Token(ctx)
	if err != nil || token == "" {
		log.Warn("token fetch failed", zap.String("instanceId", m.instanceId), zap.Error(err))
		return false
	}
	if err = m.registrar.Register(ctx, m.params.UserId, domain.DeviceToken{
		Token:      token,
		DeviceType: m.params.DeviceType,
		Browser:    m.params.Browser,
	}); err != nil {
		log.Warn("token registration failed", zap.String("instanceId", m.instanceId), zap.Error(err))
		return false
	}
	m.token = token
	log.Info("device registered", zap.String("instanceId", m.instanceId))
	return true
}

// Unregister removes the current token from the server. A manager without a
// token reports false.
func (m *Manager) Unregister(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return false
	}
	if err := m.registrar.Unregister(ctx, m.params.UserId, m.token); err != nil {
		log.Warn("unregister failed", zap.String("instanceId", m.instanceId), zap.Error(err))
		return false
	}
	m.token = ""
	return true
}

func (m *Manager) PermissionStatus() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// SendLocalNotification shows a notification on this device directly, without
// going through the server. Requires granted permission.
func (m *Manager) SendLocalNotification(ctx context.Context, p domain.Payload) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != StatusGranted {
		return false
	}
	if err := m.platform.Show(ctx, p); err != nil {
		log.Warn("local show failed", zap.String("instanceId", m.instanceId), zap.Error(err))
		return false
	}
	return true
}

// Cleanup unregisters the token if one exists and resets the state machine.
func (m *Manager) Cleanup(ctx context.Context) {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()
	if token != "" {
		if err := m.registrar.Unregister(ctx, m.params.UserId, token); err != nil {
			log.Warn("cleanup unregister failed", zap.String("instanceId", m.instanceId), zap.Error(err))
		}
	}
	m.mu.Lock()
	m.token = ""
	m.status = StatusUninitialized
	m.mu.Unlock()
}
