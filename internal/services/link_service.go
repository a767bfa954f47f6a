package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"hookify/internal/models/db_models"
	"hookify/internal/models/request_models"
	"hookify/internal/models/response_models"
	"hookify/internal/repositories"
	"hookify/pkg/utils"
)

type LinkServiceInterface interface {
	Shorten(ctx context.Context, req request_models.ShortenRequest) (response_models.ShortenResponse, error)
	Resolve(ctx context.Context, code string) (string, error)
	Analytics(ctx context.Context) ([]response_models.LinkAnalytics, error)
}

const (
	shortCodeLength   = 6
	shortCodeAttempts = 5
)

type LinkService struct {
	linkRepo repositories.LinkRepository
	appURL   string
}

func NewLinkService(linkRepo repositories.LinkRepository, appURL string) LinkServiceInterface {
	return &LinkService{
		linkRepo: linkRepo,
		appURL:   strings.TrimSuffix(appURL, "/"),
	}
}

// Shorten builds the UTM-tagged target URL and stores it under a fresh
// random code, retrying on the rare code collision.
func (l *LinkService) Shorten(ctx context.Context, req request_models.ShortenRequest) (response_models.ShortenResponse, error) {
	source := defaultString(req.UtmSource, "tiktok")
	medium := defaultString(req.UtmMedium, "organic")
	campaign := defaultString(req.UtmCampaign, "default")

	sep := "?"
	if strings.Contains(req.URL, "?") {
		sep = "&"
	}
	target := fmt.Sprintf("%s%sutm_source=%s&utm_medium=%s&utm_campaign=%s",
		req.URL, sep, source, medium, campaign)

	var link *db_models.Link
	for attempt := 0; attempt < shortCodeAttempts; attempt++ {
		code, err := utils.GenerateShortCode(shortCodeLength)
		if err != nil {
			return response_models.ShortenResponse{}, utils.ErrDatabaseError
		}

		candidate := &db_models.Link{
			Code:        code,
			URL:         target,
			UtmSource:   source,
			UtmMedium:   medium,
			UtmCampaign: campaign,
		}
		err = l.linkRepo.Insert(ctx, candidate)
		if err == nil {
			link = candidate
			break
		}
		if !repositories.IsUniqueViolation(err) {
			log.Printf("Link insert failed: %v", err)
			return response_models.ShortenResponse{}, utils.ErrDatabaseError
		}
	}
	if link == nil {
		return response_models.ShortenResponse{}, utils.ErrDatabaseError
	}

	return response_models.ShortenResponse{
		Code:      link.Code,
		ShortURL:  fmt.Sprintf("%s/r/%s", l.appURL, link.Code),
		TargetURL: link.URL,
		Clicks:    link.Clicks,
	}, nil
}

// Resolve returns the redirect target for a code, counting the click.
func (l *LinkService) Resolve(ctx context.Context, code string) (string, error) {
	link, err := l.linkRepo.IncrementClicks(ctx, code)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if link == nil {
		return "", utils.ErrLinkNotFound
	}
	return link.URL, nil
}

func (l *LinkService) Analytics(ctx context.Context) ([]response_models.LinkAnalytics, error) {
	links, err := l.linkRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	analytics := make([]response_models.LinkAnalytics, 0, len(links))
	for _, link := range links {
		analytics = append(analytics, response_models.LinkAnalytics{
			Code:   link.Code,
			URL:    link.URL,
			Clicks: link.Clicks,
		})
	}
	return analytics, nil
}
