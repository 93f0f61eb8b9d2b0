package config

import (
	"os"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/metric"
	"gopkg.in/yaml.v3"

	"github.com/focusdeck/focusdeck-push-server/api"
	"github.com/focusdeck/focusdeck-push-server/db"
	"github.com/focusdeck/focusdeck-push-server/redisprovider"
	"github.com/focusdeck/focusdeck-push-server/sender/provider/fcm"
)

const CName = "config"

func NewFromFile(path string) (c *Config, err error) {
	c = &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return
}

type Config struct {
	Mongo  db.Mongo             `yaml:"mongo"`
	Redis  redisprovider.Config `yaml:"redis"`
	Api    api.Config           `yaml:"api"`
	Metric metric.Config        `yaml:"metric"`
	FCM    fcm.Config           `yaml:"fcm"`
}

func (c *Config) Init(a *app.App) (err error) {
	return nil
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetMongo() db.Mongo {
	return c.Mongo
}

func (c *Config) GetRedis() redisprovider.Config {
	return c.Redis
}

func (c *Config) GetApi() api.Config {
	return c.Api
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetFCM() fcm.Config {
	return c.FCM
}
