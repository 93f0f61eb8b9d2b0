package redisprovider

import (
	"context"

	"github.com/anyproto/any-sync/app"
	"github.com/redis/go-redis/v9"
)

const CName = "redisprovider"

type Config struct {
	IsCluster bool   `yaml:"isCluster"`
	Url       string `yaml:"url"`
}

type configSource interface {
	GetRedis() Config
}

func New() RedisProvider {
	return new(redisProvider)
}

type RedisProvider interface {
	Redis() redis.UniversalClient
	app.ComponentRunnable
}

type redisProvider struct {
	client redis.UniversalClient
}

func (r *redisProvider) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configSource).GetRedis()
	if conf.IsCluster {
		opts, err := redis.ParseClusterURL(conf.Url)
		if err != nil {
			return err
		}
		r.client = redis.NewClusterClient(opts)
	} else {
		opts, err := redis.ParseURL(conf.Url)
		if err != nil {
			return err
		}
		r.client = redis.NewClient(opts)
	}
	return
}

func (r *redisProvider) Name() (name string) {
	return CName
}

func (r *redisProvider) Run(ctx context.Context) (err error) {
	return r.client.Ping(ctx).Err()
}

func (r *redisProvider) Redis() redis.UniversalClient {
	return r.client
}

func (r *redisProvider) Close(ctx context.Context) (err error) {
	return r.client.Close()
}
