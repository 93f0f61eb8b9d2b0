//go:generate mockgen -destination mock_userrepo/mock_userrepo.go github.com/focusdeck/focusdeck-push-server/repo/userrepo UserRepo

package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/anyproto/any-sync/app"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/focusdeck/focusdeck-push-server/db"
	"github.com/focusdeck/focusdeck-push-server/domain"
)

const CName = "push.userrepo"

const collName = "users"

var (
	ErrUserNotFound = errors.New("user not found")
)

func New() UserRepo {
	return new(userRepo)
}

type UserRepo interface {
	// AddToken appends the token to the user's set unless an equal token is
	// already present. Reports whether the set actually grew.
	AddToken(ctx context.Context, userId string, token domain.DeviceToken) (added bool, err error)
	RemoveToken(ctx context.Context, userId string, token string) (err error)
	RemoveTokens(ctx context.Context, userId string, tokens []string) (err error)
	RemoveTokensEverywhere(ctx context.Context, tokens []string) (err error)
	GetTokens(ctx context.Context, userId string) (tokens []domain.DeviceToken, err error)
	app.ComponentRunnable
}

type userRepo struct {
	coll *mongo.Collection
}

func (r *userRepo) Init(a *app.App) (err error) {
	r.coll = a.MustComponent(db.CName).(db.Database).Db().Collection(collName)
	return
}

func (r *userRepo) Name() (name string) {
	return CName
}

func (r *userRepo) Run(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "fcmTokens.token", Value: 1}},
	})
	return err
}

func (r *userRepo) AddToken(ctx context.Context, userId string, token domain.DeviceToken) (added bool, err error) {
	if token.Timestamp.IsZero() {
		token.Timestamp = time.Now()
	}
	// ensure the user doc first, then append behind the $ne guard; two
	// concurrent upserts on the same filter would race on _id otherwise
	opts := options.Update().SetUpsert(true)
	_, err = r.coll.UpdateByID(
		ctx,
		userId,
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "updated", Value: time.Now().Unix()}}},
			{Key: "$setOnInsert", Value: bson.D{{Key: "created", Value: time.Now().Unix()}}},
		},
		opts,
	)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return
	}
	res, err := r.coll.UpdateOne(
		ctx,
		bson.D{
			{Key: "_id", Value: userId},
			{Key: "fcmTokens.token", Value: bson.D{{Key: "$ne", Value: token.Token}}},
		},
		bson.D{{Key: "$push", Value: bson.D{{Key: "fcmTokens", Value: token}}}},
	)
	if err != nil {
		return
	}
	return res.ModifiedCount > 0, nil
}

func (r *userRepo) RemoveToken(ctx context.Context, userId string, token string) (err error) {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: userId}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "fcmTokens", Value: bson.D{{Key: "token", Value: token}}}}},
			{Key: "$set", Value: bson.D{{Key: "updated", Value: time.Now().Unix()}}},
		},
	)
	if err != nil {
		return
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return
}

func (r *userRepo) RemoveTokens(ctx context.Context, userId string, tokens []string) (err error) {
	if len(tokens) == 0 {
		return
	}
	_, err = r.coll.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: userId}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "fcmTokens", Value: bson.D{{Key: "token", Value: bson.D{{Key: "$in", Value: tokens}}}}}}},
			{Key: "$set", Value: bson.D{{Key: "updated", Value: time.Now().Unix()}}},
		},
	)
	return
}

func (r *userRepo) RemoveTokensEverywhere(ctx context.Context, tokens []string) (err error) {
	if len(tokens) == 0 {
		return
	}
	_, err = r.coll.UpdateMany(
		ctx,
		bson.D{{Key: "fcmTokens.token", Value: bson.D{{Key: "$in", Value: tokens}}}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "fcmTokens", Value: bson.D{{Key: "token", Value: bson.D{{Key: "$in", Value: tokens}}}}}}},
			{Key: "$set", Value: bson.D{{Key: "updated", Value: time.Now().Unix()}}},
		},
	)
	return
}

type withTokens struct {
	Tokens []domain.DeviceToken `bson:"fcmTokens"`
}

func (r *userRepo) GetTokens(ctx context.Context, userId string) (tokens []domain.DeviceToken, err error) {
	var doc withTokens
	err = r.coll.FindOne(
		ctx,
		bson.M{"_id": userId},
		options.FindOne().SetProjection(bson.M{"fcmTokens": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return doc.Tokens, nil
}

func (r *userRepo) Close(ctx context.Context) (err error) {
	return nil
}
