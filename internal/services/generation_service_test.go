package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hookify/internal/models/db_models"
	"hookify/internal/models/request_models"
	"hookify/internal/repositories"
	"hookify/pkg/utils"
)

// fakeTextClient returns a canned reply or a canned failure.
type fakeTextClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeTextClient) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newGenerationFixture(t *testing.T, client utils.TextGenerationClient) (GenerationServiceInterface, *gorm.DB, *db_models.Account) {
	t.Helper()

	db := setupTestDB(t)
	account := seedAccount(t, db)
	seedSubscription(t, db, account.ID, db_models.PlanFree, 10, 0, time.Now())

	quotaService := NewQuotaService(repositories.NewSubscriptionRepository(db))
	service := NewGenerationService(client, quotaService, repositories.NewGenerationRepository(db))
	return service, db, account
}

func TestGenerateHooks_ParsesProviderReply(t *testing.T) {
	client := &fakeTextClient{reply: `["hook one", "hook two", "hook three"]`}
	service, db, account := newGenerationFixture(t, client)

	resp, err := service.GenerateHooks(context.Background(), account.ID, request_models.HookRequest{
		Niche: "fitness",
		Topic: "home workouts",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"hook one", "hook two", "hook three"}, resp.Hooks)
	assert.Equal(t, 9, resp.RemainingQuota)
	assert.EqualValues(t, 1, countGenerations(t, db, account.ID))
}

func TestGenerateHooks_StripsCodeFence(t *testing.T) {
	client := &fakeTextClient{reply: "```json\n[\"fenced hook\"]\n```"}
	service, _, account := newGenerationFixture(t, client)

	resp, err := service.GenerateHooks(context.Background(), account.ID, request_models.HookRequest{
		Niche: "cooking", Topic: "meal prep", Variants: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fenced hook"}, resp.Hooks)
}

func TestGenerateHooks_FallsBackOnProviderFailure(t *testing.T) {
	client := &fakeTextClient{err: errors.New("provider down")}
	service, db, account := newGenerationFixture(t, client)

	resp, err := service.GenerateHooks(context.Background(), account.ID, request_models.HookRequest{
		Niche: "finance", Topic: "budgeting",
	})
	require.NoError(t, err)

	require.Len(t, resp.Hooks, 3)
	assert.Contains(t, resp.Hooks[0], "budgeting")
	// the fallback path still charges and records the call
	assert.Equal(t, 9, resp.RemainingQuota)
	assert.EqualValues(t, 1, countGenerations(t, db, account.ID))
}

func TestGenerateHooks_FallsBackOnGarbageReply(t *testing.T) {
	client := &fakeTextClient{reply: "sorry, I cannot do that"}
	service, _, account := newGenerationFixture(t, client)

	resp, err := service.GenerateHooks(context.Background(), account.ID, request_models.HookRequest{
		Niche: "travel", Topic: "solo trips",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Hooks, 3)
}

func TestGenerateHashtags_EnsuresHashPrefix(t *testing.T) {
	client := &fakeTextClient{reply: `["fitness", "#gym", "cardio"]`}
	service, _, account := newGenerationFixture(t, client)

	resp, err := service.GenerateHashtags(context.Background(), account.ID, request_models.HashtagRequest{
		Niche: "fitness", Topic: "cardio", Count: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"#fitness", "#gym", "#cardio"}, resp.Hashtags)
}

func TestAnalyzeEmotion_ParsesAnalysis(t *testing.T) {
	client := &fakeTextClient{reply: `{"primary_emotion":"joy","confidence":0.9,"emotions_breakdown":{"joy":0.9,"surprise":0.1},"suggestions":["keep the upbeat tone"]}`}
	service, _, account := newGenerationFixture(t, client)

	resp, err := service.AnalyzeEmotion(context.Background(), account.ID, request_models.EmotionRequest{
		Text: "I finally did it!",
	})
	require.NoError(t, err)

	assert.Equal(t, "joy", resp.Analysis.PrimaryEmotion)
	assert.InDelta(t, 0.9, resp.Analysis.Confidence, 0.001)
}

func TestAnalyzeEmotion_FallsBackToNeutral(t *testing.T) {
	client := &fakeTextClient{err: errors.New("timeout")}
	service, _, account := newGenerationFixture(t, client)

	resp, err := service.AnalyzeEmotion(context.Background(), account.ID, request_models.EmotionRequest{
		Text: "some text",
	})
	require.NoError(t, err)
	assert.Equal(t, "neutral", resp.Analysis.PrimaryEmotion)
}

func TestGenerateComplete_ChargesOneUnit(t *testing.T) {
	client := &fakeTextClient{reply: `["item one", "item two", "item three"]`}
	service, db, account := newGenerationFixture(t, client)

	resp, err := service.GenerateComplete(context.Background(), account.ID, request_models.CompleteRequest{
		Niche: "fitness", Topic: "cardio",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Hooks)
	assert.NotEmpty(t, resp.Captions)
	assert.NotEmpty(t, resp.Hashtags)
	assert.Nil(t, resp.Emotion)
	assert.Equal(t, 9, resp.RemainingQuota)
	assert.EqualValues(t, 1, countGenerations(t, db, account.ID))
}

func TestGenerateComplete_WithEmotion(t *testing.T) {
	client := &fakeTextClient{reply: `["one", "two"]`}
	service, _, account := newGenerationFixture(t, client)

	resp, err := service.GenerateComplete(context.Background(), account.ID, request_models.CompleteRequest{
		Niche: "fitness", Topic: "cardio", AnalyzeEmotion: true,
	})
	require.NoError(t, err)
	// the emotion reply is not valid analysis JSON here, so the fallback applies
	require.NotNil(t, resp.Emotion)
	assert.Equal(t, "neutral", resp.Emotion.PrimaryEmotion)
}

func TestGenerate_QuotaExhaustedDeniesWithoutRecord(t *testing.T) {
	client := &fakeTextClient{reply: `["hook"]`}
	db := setupTestDB(t)
	account := seedAccount(t, db)
	seedSubscription(t, db, account.ID, db_models.PlanFree, 10, 10, time.Now())

	quotaService := NewQuotaService(repositories.NewSubscriptionRepository(db))
	service := NewGenerationService(client, quotaService, repositories.NewGenerationRepository(db))

	_, err := service.GenerateHooks(context.Background(), account.ID, request_models.HookRequest{
		Niche: "fitness", Topic: "cardio",
	})
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)
	assert.EqualValues(t, 0, countGenerations(t, db, account.ID))
}

func TestListHistory_NewestFirst(t *testing.T) {
	client := &fakeTextClient{reply: `["x"]`}
	service, _, account := newGenerationFixture(t, client)
	ctx := context.Background()

	_, err := service.GenerateHooks(ctx, account.ID, request_models.HookRequest{Niche: "a", Topic: "b"})
	require.NoError(t, err)
	_, err = service.GenerateCaptions(ctx, account.ID, request_models.CaptionRequest{Niche: "a", Topic: "b"})
	require.NoError(t, err)

	items, err := service.ListHistory(ctx, account.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	stats, err := service.Stats(ctx, account.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.ByType["hook"])
	assert.EqualValues(t, 1, stats.ByType["caption"])
}
