package userrepo

import (
	"context"
	"testing"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusdeck/focusdeck-push-server/db"
	"github.com/focusdeck/focusdeck-push-server/domain"
)

var ctx = context.Background()

func TestUserRepo_AddToken(t *testing.T) {
	fx := newFixture(t)
	added, err := fx.AddToken(ctx, "u1", domain.DeviceToken{
		Token:      "t1",
		DeviceType: domain.DeviceTypeDesktop,
		Browser:    "firefox",
	})
	require.NoError(t, err)
	assert.True(t, added)

	// same token again is an idempotent no-op
	added, err = fx.AddToken(ctx, "u1", domain.DeviceToken{Token: "t1"})
	require.NoError(t, err)
	assert.False(t, added)

	added, err = fx.AddToken(ctx, "u1", domain.DeviceToken{Token: "t2"})
	require.NoError(t, err)
	assert.True(t, added)

	tokens, err := fx.GetTokens(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "t1", tokens[0].Token)
	assert.Equal(t, domain.DeviceTypeDesktop, tokens[0].DeviceType)
	assert.False(t, tokens[0].Timestamp.IsZero())
}

func TestUserRepo_RemoveToken(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.AddToken(ctx, "u1", domain.DeviceToken{Token: "t1"})
	require.NoError(t, err)

	require.NoError(t, fx.RemoveToken(ctx, "u1", "t1"))
	tokens, err := fx.GetTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, tokens, 0)

	// removing an absent token is not an error
	require.NoError(t, fx.RemoveToken(ctx, "u1", "t1"))

	require.ErrorIs(t, fx.RemoveToken(ctx, "missing", "t1"), ErrUserNotFound)
}

func TestUserRepo_RemoveTokens(t *testing.T) {
	fx := newFixture(t)
	for _, tok := range []string{"t1", "t2", "t3"} {
		_, err := fx.AddToken(ctx, "u1", domain.DeviceToken{Token: tok})
		require.NoError(t, err)
	}
	require.NoError(t, fx.RemoveTokens(ctx, "u1", []string{"t1", "t3"}))
	tokens, err := fx.GetTokens(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "t2", tokens[0].Token)
}

func TestUserRepo_RemoveTokensEverywhere(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.AddToken(ctx, "u1", domain.DeviceToken{Token: "dead"})
	require.NoError(t, err)
	_, err = fx.AddToken(ctx, "u2", domain.DeviceToken{Token: "dead"})
	require.NoError(t, err)
	_, err = fx.AddToken(ctx, "u2", domain.DeviceToken{Token: "live"})
	require.NoError(t, err)

	require.NoError(t, fx.RemoveTokensEverywhere(ctx, []string{"dead"}))

	tokens, err := fx.GetTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, tokens, 0)
	tokens, err = fx.GetTokens(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "live", tokens[0].Token)
}

func TestUserRepo_GetTokens_NotFound(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.GetTokens(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func newFixture(t testing.TB) *fixture {
	fx := &fixture{
		UserRepo: New(),
		a:        new(app.App),
	}
	fx.a.Register(&testConfig{
		Mongo: db.Mongo{
			Connect:  "mongodb://localhost:27017",
			Database: "focusdeck_push_unittest",
		},
	}).
		Register(db.New()).
		Register(fx.UserRepo)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		fx.finish(t)
	})
	return fx
}

type fixture struct {
	UserRepo
	a *app.App
}

func (fx *fixture) finish(t testing.TB) {
	_ = fx.UserRepo.(*userRepo).coll.Drop(ctx)
	require.NoError(t, fx.a.Close(ctx))
}

type testConfig struct {
	Mongo db.Mongo
}

func (t testConfig) Init(a *app.App) (err error) {
	return
}

func (t testConfig) Name() (name string) {
	return "config"
}

func (t testConfig) GetMongo() db.Mongo {
	return t.Mongo
}
