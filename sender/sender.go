//go:generate mockgen -destination mock_sender/mock_sender.go github.com/focusdeck/focusdeck-push-server/sender Sender

package sender

import (
	"context"
	"errors"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"github.com/cheggaaa/mb/v3"
	"go.uber.org/zap"

	"github.com/focusdeck/focusdeck-push-server/domain"
	"github.com/focusdeck/focusdeck-push-server/queue"
	"github.com/focusdeck/focusdeck-push-server/repo/userrepo"
)

const CName = "push.sender"

var log = logger.NewNamed(CName)

var ErrNoProvider = errors.New("no push provider registered")

// TODO: move the num runners to the config
const consumerCount = 10

func New() Sender {
	return new(sender)
}

type Sender interface {
	RegisterProvider(p Provider)
	// Send delivers one multicast batch and reports the per-token outcome.
	Send(ctx context.Context, msg domain.Message) (res domain.SendResult, err error)
	app.ComponentRunnable
}

type Provider interface {
	SendMulticast(ctx context.Context, msg domain.Message, onInvalid func(token string)) (res domain.SendResult, err error)
}

type sender struct {
	userRepo      userrepo.UserRepo
	queue         queue.Queue
	invalidTokens *mb.MB[string]
	provider      Provider
	metrics       senderMetrics
}

func (s *sender) Init(a *app.App) (err error) {
	s.userRepo = a.MustComponent(userrepo.CName).(userrepo.UserRepo)
	s.queue = a.MustComponent(queue.CName).(queue.Queue)
	s.invalidTokens = mb.New[string](100)
	if m := a.Component(metric.CName); m != nil {
		registerMetrics(m.(metric.Metric).Registry(), s)
	}
	return
}

func (s *sender) Name() (name string) {
	return CName
}

func (s *sender) Run(ctx context.Context) (err error) {
	for range consumerCount {
		if err = s.queue.Consume(ctx, s.sendQueued); err != nil {
			return
		}
	}
	go s.removeTokensBatch()
	return
}

func (s *sender) RegisterProvider(p Provider) {
	s.provider = p
}

func (s *sender) Send(ctx context.Context, msg domain.Message) (res domain.SendResult, err error) {
	if s.provider == nil {
		return domain.SendResult{}, ErrNoProvider
	}
	st := time.Now()
	if res, err = s.provider.SendMulticast(ctx, msg, s.onInvalid); err != nil {
		return
	}
	s.metrics.sendCount.Add(1)
	s.metrics.sendTokens.Add(int64(len(msg.Tokens)))
	if s.metrics.sendDuration != nil {
		s.metrics.sendDuration.WithLabelValues().Observe(time.Since(st).Seconds())
	}
	return
}

func (s *sender) sendQueued(msg queue.Message) (err error) {
	ctx := context.Background()
	deviceTokens, err := s.userRepo.GetTokens(ctx, msg.UserId)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return nil
		}
		return
	}
	if len(deviceTokens) == 0 {
		return nil
	}
	tokens := make([]string, len(deviceTokens))
	for i, t := range deviceTokens {
		tokens[i] = t.Token
	}
	res, err := s.Send(ctx, domain.Message{Tokens: tokens, Payload: msg.Payload})
	if err != nil {
		return
	}
	if failed := res.FailedTokens(); len(failed) > 0 {
		if rmErr := s.userRepo.RemoveTokens(ctx, msg.UserId, failed); rmErr != nil {
			log.Warn("prune failed tokens error", zap.String("userId", msg.UserId), zap.Error(rmErr))
		}
	}
	log.Info("queued push sent",
		zap.String("msgId", msg.Id),
		zap.Int("success", res.SuccessCount),
		zap.Int("failure", res.FailureCount),
	)
	return nil
}

func (s *sender) onInvalid(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = s.invalidTokens.Add(ctx, token)
}

func (s *sender) removeTokensBatch() {
	ctx := mb.CtxWithTimeLimit(context.Background(), time.Second)
	cond := s.invalidTokens.NewCond().WithMin(10)
	for {
		tokens, err := cond.Wait(ctx)
		if err != nil {
			return
		}
		st := time.Now()
		if err = s.userRepo.RemoveTokensEverywhere(ctx, tokens); err != nil {
			log.Error("remove tokens error", zap.Error(err))
		} else {
			log.Info("remove tokens success", zap.Int("count", len(tokens)), zap.Duration("dur", time.Since(st)))
		}
	}
}

func (s *sender) Close(ctx context.Context) (err error) {
	return s.invalidTokens.Close()
}
