//go:generate mockgen -destination mock_dispatch/mock_dispatch.go github.com/focusdeck/focusdeck-push-server/dispatch Dispatch

package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/focusdeck/focusdeck-push-server/domain"
	"github.com/focusdeck/focusdeck-push-server/queue"
	"github.com/focusdeck/focusdeck-push-server/repo/userrepo"
	"github.com/focusdeck/focusdeck-push-server/sender"
)

const CName = "push.dispatch"

var log = logger.NewNamed(CName)

var (
	ErrUserNotFound = userrepo.ErrUserNotFound
	// ErrNoTokens means the resolved destination set was empty: sending to
	// zero recipients is a caller mistake, not a silent success.
	ErrNoTokens = errors.New("no tokens to deliver to")
)

func New() Dispatch {
	return new(dispatch)
}

type SendRequest struct {
	UserId  string
	Payload domain.Payload
	// Tokens, when set, is used verbatim instead of the stored set.
	Tokens []string
}

type Dispatch interface {
	Register(ctx context.Context, userId string, token domain.DeviceToken) (err error)
	Unregister(ctx context.Context, userId string, token string) (err error)
	Send(ctx context.Context, req SendRequest) (res domain.SendResult, err error)
	Broadcast(ctx context.Context, userIds []string, payload domain.Payload) (queued int, err error)
	app.Component
}

type dispatch struct {
	userRepo userrepo.UserRepo
	queue    queue.Queue
	sender   sender.Sender
}

func (d *dispatch) Init(a *app.App) (err error) {
	d.userRepo = a.MustComponent(userrepo.CName).(userrepo.UserRepo)
	d.queue = a.MustComponent(queue.CName).(queue.Queue)
	d.sender = a.MustComponent(sender.CName).(sender.Sender)
	return
}

func (d *dispatch) Name() (name string) {
	return CName
}

func (d *dispatch) Register(ctx context.Context, userId string, token domain.DeviceToken) (err error) {
	added, err := d.userRepo.AddToken(ctx, userId, token)
	if err != nil {
		return
	}
	if added {
		log.Info("token registered", zap.String("userId", userId), zap.String("deviceType", string(token.DeviceType)))
	} else {
		log.Debug("token already registered", zap.String("userId", userId))
	}
	return
}

func (d *dispatch) Unregister(ctx context.Context, userId string, token string) (err error) {
	if err = d.userRepo.RemoveToken(ctx, userId, token); err != nil {
		return
	}
	log.Info("token unregistered", zap.String("userId", userId))
	return
}

func (d *dispatch) Send(ctx context.Context, req SendRequest) (res domain.SendResult, err error) {
	tokens := req.Tokens
	if len(tokens) == 0 {
		var stored []domain.DeviceToken
		if stored, err = d.userRepo.GetTokens(ctx, req.UserId); err != nil {
			return
		}
		tokens = make([]string, len(stored))
		for i, t := range stored {
			tokens[i] = t.Token
		}
	}
	if len(tokens) == 0 {
		return res, ErrNoTokens
	}
	if res, err = d.sender.Send(ctx, domain.Message{Tokens: tokens, Payload: req.Payload}); err != nil {
		return
	}
	if failed := res.FailedTokens(); len(failed) > 0 {
		// $pull against the stored set as it is now, so concurrent
		// registrations are not clobbered
		if rmErr := d.userRepo.RemoveTokens(ctx, req.UserId, failed); rmErr != nil {
			log.Warn("prune failed tokens error", zap.String("userId", req.UserId), zap.Error(rmErr))
		}
	}
	log.Info("push sent",
		zap.String("userId", req.UserId),
		zap.String("type", req.Payload.Tag()),
		zap.Int("success", res.SuccessCount),
		zap.Int("failure", res.FailureCount),
	)
	return
}

func (d *dispatch) Broadcast(ctx context.Context, userIds []string, payload domain.Payload) (queued int, err error) {
	for _, userId := range userIds {
		msg := queue.Message{
			Id:      uuid.NewString(),
			UserId:  userId,
			Payload: payload,
			Created: time.Now(),
		}
		if err = d.queue.Add(ctx, msg); err != nil {
			return
		}
		queued++
	}
	log.Info("broadcast queued", zap.String("type", payload.Tag()), zap.Int("count", queued))
	return
}
