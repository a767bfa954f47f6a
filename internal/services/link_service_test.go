package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hookify/internal/models/request_models"
	"hookify/internal/repositories"
	"hookify/pkg/utils"
)

func newLinkFixture(t *testing.T) LinkServiceInterface {
	t.Helper()

	db := setupTestDB(t)
	return NewLinkService(repositories.NewLinkRepository(db), "https://hookify.app/")
}

func TestShorten_AppendsDefaultUtmTags(t *testing.T) {
	service := newLinkFixture(t)

	resp, err := service.Shorten(context.Background(), request_models.ShortenRequest{
		URL: "https://example.com/page",
	})
	require.NoError(t, err)

	assert.Len(t, resp.Code, 6)
	assert.Equal(t, "https://hookify.app/r/"+resp.Code, resp.ShortURL)
	assert.Equal(t,
		"https://example.com/page?utm_source=tiktok&utm_medium=organic&utm_campaign=default",
		resp.TargetURL)
	assert.EqualValues(t, 0, resp.Clicks)
}

func TestShorten_PreservesExistingQuery(t *testing.T) {
	service := newLinkFixture(t)

	resp, err := service.Shorten(context.Background(), request_models.ShortenRequest{
		URL:         "https://example.com/page?ref=abc",
		UtmSource:   "instagram",
		UtmMedium:   "paid",
		UtmCampaign: "launch",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.TargetURL, "https://example.com/page?ref=abc&"))
	assert.Contains(t, resp.TargetURL, "utm_source=instagram")
	assert.Contains(t, resp.TargetURL, "utm_medium=paid")
	assert.Contains(t, resp.TargetURL, "utm_campaign=launch")
}

func TestResolve_CountsEveryClick(t *testing.T) {
	service := newLinkFixture(t)
	ctx := context.Background()

	created, err := service.Shorten(ctx, request_models.ShortenRequest{
		URL: "https://example.com",
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		target, err := service.Resolve(ctx, created.Code)
		require.NoError(t, err)
		assert.Equal(t, created.TargetURL, target)
	}

	analytics, err := service.Analytics(ctx)
	require.NoError(t, err)
	require.Len(t, analytics, 1)
	assert.Equal(t, created.Code, analytics[0].Code)
	assert.EqualValues(t, 3, analytics[0].Clicks)
}

func TestResolve_UnknownCode(t *testing.T) {
	service := newLinkFixture(t)

	_, err := service.Resolve(context.Background(), "zzzzzz")
	assert.ErrorIs(t, err, utils.ErrLinkNotFound)
}

func TestAnalytics_EmptyWithoutLinks(t *testing.T) {
	service := newLinkFixture(t)

	analytics, err := service.Analytics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, analytics)
}
