package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusdeck/focusdeck-push-server/domain"
)

var ctx = context.Background()

func TestManager_Initialize(t *testing.T) {
	t.Run("unsupported platform", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.supported = false
		assert.False(t, fx.Initialize(ctx))
		assert.Equal(t, StatusUnsupported, fx.PermissionStatus())
	})
	t.Run("reads current permission without prompting", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusGranted
		fx.platform.token = "tok-0"
		assert.True(t, fx.Initialize(ctx))
		assert.Equal(t, StatusGranted, fx.PermissionStatus())
		assert.Zero(t, fx.platform.prompts.Load())
	})
	t.Run("already granted refreshes the token silently", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusGranted
		fx.platform.token = "tok-silent"
		assert.True(t, fx.Initialize(ctx))
		assert.Equal(t, "tok-silent", fx.Token())
		assert.Zero(t, fx.platform.prompts.Load())
	})
	t.Run("silent token refresh failure degrades to false", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusGranted
		fx.platform.tokenErr = errors.New("subscription failed")
		assert.False(t, fx.Initialize(ctx))
		assert.Empty(t, fx.Token())
	})
	t.Run("denied means unusable", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusDenied
		assert.False(t, fx.Initialize(ctx))
		assert.Equal(t, StatusDenied, fx.PermissionStatus())
	})
}

func TestManager_RequestPermissionAndRegister(t *testing.T) {
	t.Run("before initialize", func(t *testing.T) {
		fx := newFixture(t)
		assert.False(t, fx.RequestPermissionAndRegister(ctx))
	})
	t.Run("prompt granted, token registered", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusDefault
		fx.platform.promptResult = StatusGranted
		fx.platform.token = "tok-1"
		fx.Initialize(ctx)
		assert.True(t, fx.RequestPermissionAndRegister(ctx))
		assert.Equal(t, StatusGranted, fx.PermissionStatus())
		assert.Equal(t, "tok-1", fx.Token())
		assert.Equal(t, "tok-1", fx.registrar.registered["u1"].Token)
	})
	t.Run("prompt denied", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusDefault
		fx.platform.promptResult = StatusDenied
		fx.Initialize(ctx)
		assert.False(t, fx.RequestPermissionAndRegister(ctx))
		assert.Equal(t, StatusDenied, fx.PermissionStatus())
		assert.Empty(t, fx.Token())
	})
	t.Run("already granted skips the prompt", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusGranted
		fx.platform.token = "tok-2"
		fx.Initialize(ctx)
		assert.True(t, fx.RequestPermissionAndRegister(ctx))
		assert.Zero(t, fx.platform.prompts.Load())
	})
	t.Run("denied never prompts again", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusDenied
		fx.Initialize(ctx)
		assert.False(t, fx.RequestPermissionAndRegister(ctx))
		assert.Zero(t, fx.platform.prompts.Load())
	})
	t.Run("token fetch failure degrades to false", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusGranted
		fx.platform.tokenErr = errors.New("subscription failed")
		fx.Initialize(ctx)
		assert.False(t, fx.RequestPermissionAndRegister(ctx))
	})
	t.Run("registration failure degrades to false", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusGranted
		fx.platform.token = "tok-3"
		fx.registrar.err = errors.New("server unreachable")
		fx.Initialize(ctx)
		assert.False(t, fx.RequestPermissionAndRegister(ctx))
		// the platform token from the silent refresh stays cached
		assert.Equal(t, "tok-3", fx.Token())
	})
}

func TestManager_Unregister(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		fx := newFixture(t)
		assert.False(t, fx.Unregister(ctx))
	})
	t.Run("removes the registered token", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusGranted
		fx.platform.token = "tok-4"
		fx.Initialize(ctx)
		require.True(t, fx.RequestPermissionAndRegister(ctx))
		assert.True(t, fx.Unregister(ctx))
		assert.Empty(t, fx.Token())
		assert.Equal(t, "tok-4", fx.registrar.unregistered["u1"])
	})
}

func TestManager_SendLocalNotification(t *testing.T) {
	t.Run("requires granted", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusDefault
		fx.Initialize(ctx)
		assert.False(t, fx.SendLocalNotification(ctx, domain.Payload{Title: "a"}))
		assert.Empty(t, fx.platform.shown)
	})
	t.Run("shows on the platform", func(t *testing.T) {
		fx := newFixture(t)
		fx.platform.permission = StatusGranted
		fx.Initialize(ctx)
		p := domain.Payload{Type: domain.TypeTimerComplete, Title: "Done", Body: "25 min"}
		assert.True(t, fx.SendLocalNotification(ctx, p))
		require.Len(t, fx.platform.shown, 1)
		assert.Equal(t, p, fx.platform.shown[0])
	})
}

func TestManager_Cleanup(t *testing.T) {
	fx := newFixture(t)
	fx.platform.permission = StatusGranted
	fx.platform.token = "tok-5"
	fx.Initialize(ctx)
	require.True(t, fx.RequestPermissionAndRegister(ctx))

	fx.Cleanup(ctx)
	assert.Empty(t, fx.Token())
	assert.Equal(t, StatusUninitialized, fx.PermissionStatus())
	assert.Equal(t, "tok-5", fx.registrar.unregistered["u1"])
}

func TestHttpRegistrar(t *testing.T) {
	t.Run("register posts the token", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()
		reg := NewHttpRegistrar(srv.URL)
		require.NoError(t, reg.Register(ctx, "u1", domain.DeviceToken{Token: "t1", DeviceType: domain.DeviceTypeDesktop}))
		assert.Equal(t, "/notifications/register", gotPath)
	})
	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
		}))
		defer srv.Close()
		reg := NewHttpRegistrar(srv.URL)
		err := reg.Unregister(ctx, "missing", "t1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

type fakePlatform struct {
	supported    bool
	permission   Status
	promptResult Status
	promptErr    error
	prompts      atomic.Int32
	token        string
	tokenErr     error
	shown        []domain.Payload
}

func (p *fakePlatform) Supported() bool    { return p.supported }
func (p *fakePlatform) Permission() Status { return p.permission }

func (p *fakePlatform) RequestPermission(ctx context.Context) (Status, error) {
	p.prompts.Add(1)
	return p.promptResult, p.promptErr
}

func (p *fakePlatform) Token(ctx context.Context) (string, error) {
	return p.token, p.tokenErr
}

func (p *fakePlatform) Show(ctx context.Context, payload domain.Payload) error {
	p.shown = append(p.shown, payload)
	return nil
}

type fakeRegistrar struct {
	registered   map[string]domain.DeviceToken
	unregistered map[string]string
	err          error
}

func (r *fakeRegistrar) Register(ctx context.Context, userId string, token domain.DeviceToken) error {
	if r.err != nil {
		return r.err
	}
	r.registered[userId] = token
	return nil
}

func (r *fakeRegistrar) Unregister(ctx context.Context, userId, token string) error {
	if r.err != nil {
		return r.err
	}
	r.unregistered[userId] = token
	return nil
}

type fixture struct {
	*Manager
	platform  *fakePlatform
	registrar *fakeRegistrar
}

func newFixture(t *testing.T) *fixture {
	platform := &fakePlatform{supported: true, permission: StatusDefault}
	registrar := &fakeRegistrar{
		registered:   map[string]domain.DeviceToken{},
		unregistered: map[string]string{},
	}
	return &fixture{
		Manager:   NewManager(platform, registrar, Params{UserId: "u1", DeviceType: domain.DeviceTypeDesktop, Browser: "firefox"}),
		platform:  platform,
		registrar: registrar,
	}
}
