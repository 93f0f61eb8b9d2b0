package testredisprovider

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/anyproto/any-sync/app"
	"github.com/redis/go-redis/v9"

	"github.com/focusdeck/focusdeck-push-server/redisprovider"
)

func NewTestRedisProvider() *TestRedisProvider {
	return new(TestRedisProvider)
}

// TestRedisProvider is a redisprovider backed by an in-process miniredis.
type TestRedisProvider struct {
	mini   *miniredis.Miniredis
	client redis.UniversalClient
}

func (t *TestRedisProvider) Init(a *app.App) (err error) {
	if t.mini, err = miniredis.Run(); err != nil {
		return
	}
	t.client = redis.NewClient(&redis.Options{Addr: t.mini.Addr()})
	return
}

func (t *TestRedisProvider) Name() (name string) {
	return redisprovider.CName
}

func (t *TestRedisProvider) Run(ctx context.Context) (err error) {
	return nil
}

func (t *TestRedisProvider) Redis() redis.UniversalClient {
	return t.client
}

func (t *TestRedisProvider) Close(ctx context.Context) (err error) {
	_ = t.client.Close()
	t.mini.Close()
	return nil
}
