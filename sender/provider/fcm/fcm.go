package fcm

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/focusdeck/focusdeck-push-server/domain"
	"github.com/focusdeck/focusdeck-push-server/sender"
)

const CName = "push.provider.fcm"

var log = logger.NewNamed(CName)

func New() FCM {
	return new(fcm)
}

type FCM interface {
	app.Component
}

type fcm struct {
}

func (f *fcm) Init(a *app.App) (err error) {
	s := a.MustComponent(sender.CName).(sender.Sender)
	conf := a.MustComponent("config").(configSource).GetFCM()

	prv, err := newProvider(conf.CredentialsFile)
	if err != nil {
		return err
	}
	s.RegisterProvider(prv)
	return
}

func (f *fcm) Name() (name string) {
	return CName
}

func newProvider(credentialsFile string) (sender.Provider, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	fcmApp, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, err
	}
	client, err := fcmApp.Messaging(context.Background())
	if err != nil {
		return nil, err
	}
	return &fcmProvider{client: client}, nil
}

type fcmProvider struct {
	client *messaging.Client
}

const batchSize = 500

func (f *fcmProvider) SendMulticast(ctx context.Context, msg domain.Message, onInvalid func(token string)) (res domain.SendResult, err error) {
	nextBatch := msg.Tokens
	for len(nextBatch) > 0 {
		var tokens []string
		if len(nextBatch) > batchSize {
			tokens = nextBatch[:batchSize]
			nextBatch = nextBatch[batchSize:]
		} else {
			tokens = nextBatch
			nextBatch = nil
		}
		var response *messaging.BatchResponse
		if response, err = f.client.SendEachForMulticast(ctx, buildFcmMessage(tokens, msg.Payload)); err != nil {
			return
		}
		for i, resp := range response.Responses {
			res.Add(tokens[i], resp.Error)
			if resp.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(resp.Error) || messaging.IsUnregistered(resp.Error) {
				onInvalid(tokens[i])
				log.Info("mark token as invalid", zap.String("token", tokens[i]))
			} else {
				log.Warn("fcm returned error", zap.Error(resp.Error), zap.String("token", tokens[i]))
			}
		}
		log.Info("push sent", zap.Int("success", response.SuccessCount), zap.Int("failure", response.FailureCount))
	}
	return
}

func buildFcmMessage(tokens []string, p domain.Payload) *messaging.MulticastMessage {
	requireInteraction := p.RequireInteraction
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data: p.FlattenData(),
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title:              p.Title,
				Body:               p.Body,
				Icon:               p.Icon,
				Badge:              p.Badge,
				Tag:                p.Tag(),
				RequireInteraction: requireInteraction,
			},
		},
	}
}
