package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"hookify/internal/models/db_models"
	"hookify/internal/models/request_models"
	"hookify/internal/models/response_models"
	"hookify/internal/repositories"
	"hookify/pkg/utils"
)

type GenerationServiceInterface interface {
	GenerateHooks(ctx context.Context, accountID uuid.UUID, req request_models.HookRequest) (response_models.HooksResponse, error)
	GenerateCaptions(ctx context.Context, accountID uuid.UUID, req request_models.CaptionRequest) (response_models.CaptionsResponse, error)
	GenerateHashtags(ctx context.Context, accountID uuid.UUID, req request_models.HashtagRequest) (response_models.HashtagsResponse, error)
	AnalyzeEmotion(ctx context.Context, accountID uuid.UUID, req request_models.EmotionRequest) (response_models.EmotionResponse, error)
	GenerateComplete(ctx context.Context, accountID uuid.UUID, req request_models.CompleteRequest) (response_models.CompleteResponse, error)
	ListHistory(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]response_models.GenerationHistoryItem, error)
	Stats(ctx context.Context, accountID uuid.UUID) (response_models.GenerationStats, error)
}

const (
	hookSystemPrompt = `You are an expert at writing viral hooks for short-form videos (TikTok, Reels, Shorts).
Your hooks must grab attention within the first 3 seconds, spark curiosity, stay relevant to the niche, use mental triggers (scarcity, urgency, exclusivity, social proof), and run 5-15 words.
Return ONLY a JSON array of hooks, no explanations.`

	captionSystemPrompt = `You are a copywriter specialized in social-media video captions.
Captions must reinforce the video's message, include the call-to-action when one is given, read persuasive and conversational, and run 50-150 words unless told otherwise.
Return ONLY a JSON array of captions, no explanations.`

	hashtagSystemPrompt = `You are a social-media hashtag specialist.
Hashtags must fit the niche and topic, mix popular and niche tags, avoid overly generic ones, and favor reach potential.
Return ONLY a JSON array of hashtags (with #), no explanations.`

	emotionSystemPrompt = `You are an emotion analyst specialized in video content.
Identify the dominant emotion (joy, surprise, fear, anger, sadness, neutral), your confidence (0-1), the distribution of all detected emotions, and suggestions to raise emotional engagement.
Return ONLY a JSON object with: primary_emotion, confidence, emotions_breakdown (dict), suggestions (array).`
)

var toneDescriptions = map[string]string{
	"direct":       "direct and to the point",
	"motivational": "inspiring and motivational",
	"educational":  "educational and informative",
	"storytelling": "narrative and engaging",
}

type GenerationService struct {
	client         utils.TextGenerationClient
	quotaService   QuotaServiceInterface
	generationRepo repositories.GenerationRepository
}

func NewGenerationService(
	client utils.TextGenerationClient,
	quotaService QuotaServiceInterface,
	generationRepo repositories.GenerationRepository,
) GenerationServiceInterface {
	return &GenerationService{
		client:         client,
		quotaService:   quotaService,
		generationRepo: generationRepo,
	}
}

func (g *GenerationService) GenerateHooks(ctx context.Context, accountID uuid.UUID, req request_models.HookRequest) (response_models.HooksResponse, error) {
	variants := clampCount(req.Variants, 3, 10)
	platform := defaultString(req.Platform, "tiktok")

	userPrompt := fmt.Sprintf(`Write %d viral hooks for a %s video about:
Niche: %s
Topic: %s
Tone: %s

Return a JSON array: ["hook 1", "hook 2", ...]`,
		variants, platform, req.Niche, req.Topic, describeTone(req.Tone))

	hooks := g.completeList(ctx, hookSystemPrompt, userPrompt, 0.9, 500,
		fallbackHooks(req.Niche, req.Topic))
	hooks = capList(hooks, variants)

	remaining, err := g.quotaService.CheckAndCommit(ctx, accountID, db_models.GenerationHook, req, hooks)
	if err != nil {
		return response_models.HooksResponse{}, err
	}

	return response_models.HooksResponse{Hooks: hooks, RemainingQuota: remaining}, nil
}

func (g *GenerationService) GenerateCaptions(ctx context.Context, accountID uuid.UUID, req request_models.CaptionRequest) (response_models.CaptionsResponse, error) {
	variants := clampCount(req.Variants, 3, 10)
	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = 150
	}

	var extras strings.Builder
	if req.ProductName != "" {
		fmt.Fprintf(&extras, "Product: %s\n", req.ProductName)
	}
	if req.CallToAction != "" {
		fmt.Fprintf(&extras, "CTA: %s\n", req.CallToAction)
	}

	userPrompt := fmt.Sprintf(`Write %d captions for a video about:
Niche: %s
Topic: %s
Tone: %s
%sMax length: %d words

Return a JSON array: ["caption 1", "caption 2", ...]`,
		variants, req.Niche, req.Topic, describeTone(req.Tone), extras.String(), maxLength)

	captions := g.completeList(ctx, captionSystemPrompt, userPrompt, 0.8, 800,
		fallbackCaptions(req.Niche, req.Topic, req.CallToAction))
	captions = capList(captions, variants)

	remaining, err := g.quotaService.CheckAndCommit(ctx, accountID, db_models.GenerationCaption, req, captions)
	if err != nil {
		return response_models.CaptionsResponse{}, err
	}

	return response_models.CaptionsResponse{Captions: captions, RemainingQuota: remaining}, nil
}

func (g *GenerationService) GenerateHashtags(ctx context.Context, accountID uuid.UUID, req request_models.HashtagRequest) (response_models.HashtagsResponse, error) {
	count := clampCount(req.Count, 10, 30)
	platform := defaultString(req.Platform, "tiktok")

	trendingLine := "Include trending hashtags"
	if req.IncludeTrending != nil && !*req.IncludeTrending {
		trendingLine = "Focus on niche hashtags"
	}

	userPrompt := fmt.Sprintf(`Write %d hashtags for a %s video about:
Niche: %s
Topic: %s
%s

Return a JSON array: ["#hashtag1", "#hashtag2", ...]`,
		count, platform, req.Niche, req.Topic, trendingLine)

	hashtags := g.completeList(ctx, hashtagSystemPrompt, userPrompt, 0.7, 400,
		fallbackHashtags(req.Niche, req.Topic))
	for i, h := range hashtags {
		if !strings.HasPrefix(h, "#") {
			hashtags[i] = "#" + h
		}
	}
	hashtags = capList(hashtags, count)

	remaining, err := g.quotaService.CheckAndCommit(ctx, accountID, db_models.GenerationHashtag, req, hashtags)
	if err != nil {
		return response_models.HashtagsResponse{}, err
	}

	return response_models.HashtagsResponse{Hashtags: hashtags, RemainingQuota: remaining}, nil
}

func (g *GenerationService) AnalyzeEmotion(ctx context.Context, accountID uuid.UUID, req request_models.EmotionRequest) (response_models.EmotionResponse, error) {
	analysis := g.analyzeEmotionText(ctx, req.Text, req.Context)

	remaining, err := g.quotaService.CheckAndCommit(ctx, accountID, db_models.GenerationEmotion, req, analysis)
	if err != nil {
		return response_models.EmotionResponse{}, err
	}

	return response_models.EmotionResponse{Analysis: analysis, RemainingQuota: remaining}, nil
}

// GenerateComplete produces hooks, captions, and hashtags in one call, with
// an optional emotion analysis of the leading pair. The whole bundle charges
// a single quota unit of type "complete".
func (g *GenerationService) GenerateComplete(ctx context.Context, accountID uuid.UUID, req request_models.CompleteRequest) (response_models.CompleteResponse, error) {
	hooksResp, err := g.buildCompleteContent(ctx, req)
	if err != nil {
		return response_models.CompleteResponse{}, err
	}

	remaining, err := g.quotaService.CheckAndCommit(ctx, accountID, db_models.GenerationComplete, req, hooksResp)
	if err != nil {
		return response_models.CompleteResponse{}, err
	}

	hooksResp.RemainingQuota = remaining
	return hooksResp, nil
}

func (g *GenerationService) buildCompleteContent(ctx context.Context, req request_models.CompleteRequest) (response_models.CompleteResponse, error) {
	platform := defaultString(req.Platform, "tiktok")

	hookPrompt := fmt.Sprintf(`Write 3 viral hooks for a %s video about:
Niche: %s
Topic: %s
Tone: %s

Return a JSON array: ["hook 1", "hook 2", ...]`,
		platform, req.Niche, req.Topic, describeTone(req.Tone))
	hooks := g.completeList(ctx, hookSystemPrompt, hookPrompt, 0.9, 500,
		fallbackHooks(req.Niche, req.Topic))

	captionPrompt := fmt.Sprintf(`Write 3 captions for a video about:
Niche: %s
Topic: %s
Tone: %s

Return a JSON array: ["caption 1", "caption 2", ...]`,
		req.Niche, req.Topic, describeTone(req.Tone))
	captions := g.completeList(ctx, captionSystemPrompt, captionPrompt, 0.8, 800,
		fallbackCaptions(req.Niche, req.Topic, req.CallToAction))

	hashtagPrompt := fmt.Sprintf(`Write 10 hashtags for a %s video about:
Niche: %s
Topic: %s
Include trending hashtags

Return a JSON array: ["#hashtag1", "#hashtag2", ...]`,
		platform, req.Niche, req.Topic)
	hashtags := g.completeList(ctx, hashtagSystemPrompt, hashtagPrompt, 0.7, 400,
		fallbackHashtags(req.Niche, req.Topic))

	resp := response_models.CompleteResponse{
		Hooks:    hooks,
		Captions: captions,
		Hashtags: hashtags,
	}

	if req.AnalyzeEmotion && len(hooks) > 0 && len(captions) > 0 {
		combined := hooks[0] + " " + captions[0]
		analysis := g.analyzeEmotionText(ctx, combined,
			fmt.Sprintf("Video about %s in %s", req.Topic, req.Niche))
		resp.Emotion = &analysis
	}

	return resp, nil
}

func (g *GenerationService) ListHistory(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]response_models.GenerationHistoryItem, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	generations, err := g.generationRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.GenerationHistoryItem, 0, len(generations))
	for _, gen := range generations {
		items = append(items, response_models.GenerationHistoryItem{
			ID:         gen.ID.String(),
			Type:       string(gen.Type),
			TokensUsed: gen.TokensUsed,
			CreatedAt:  formatUnix(gen.CreatedAt),
		})
	}
	return items, nil
}

// Stats aggregates the account's records by type over the current rolling
// window, plus an all-time total.
func (g *GenerationService) Stats(ctx context.Context, accountID uuid.UUID) (response_models.GenerationStats, error) {
	total, err := g.generationRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return response_models.GenerationStats{}, utils.ErrDatabaseError
	}

	since := time.Now().Add(-db_models.QuotaResetWindow)
	counts, err := g.generationRepo.CountByTypeSince(ctx, accountID, since)
	if err != nil {
		return response_models.GenerationStats{}, utils.ErrDatabaseError
	}

	byType := make(map[string]int64, len(counts))
	for _, c := range counts {
		byType[string(c.Type)] = c.Count
	}

	return response_models.GenerationStats{Total: total, ByType: byType}, nil
}

// completeList asks the provider for a JSON array of strings and falls back
// to static templates on any provider or parse failure. Generation never
// fails outward because the provider is down.
func (g *GenerationService) completeList(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int, fallback []string) []string {
	content, err := g.client.Complete(ctx, systemPrompt, userPrompt, temperature, maxTokens)
	if err != nil {
		log.Printf("Text generation failed, using fallback templates: %v", err)
		return fallback
	}

	var items []string
	if err := json.Unmarshal([]byte(utils.StripJSONFence(content)), &items); err != nil || len(items) == 0 {
		log.Printf("Unparseable generation output, using fallback templates: %v", err)
		return fallback
	}
	return items
}

func (g *GenerationService) analyzeEmotionText(ctx context.Context, text, hint string) response_models.EmotionAnalysis {
	var contextLine string
	if hint != "" {
		contextLine = "Context: " + hint + "\n"
	}

	userPrompt := fmt.Sprintf(`Analyze the dominant emotion in this video text/description:

Text: %s
%s
Return a JSON object:
{
  "primary_emotion": "joy|surprise|fear|anger|sadness|neutral",
  "confidence": 0.0,
  "emotions_breakdown": {"joy": 0.5, "surprise": 0.3},
  "suggestions": ["suggestion 1", "suggestion 2"]
}`, text, contextLine)

	content, err := g.client.Complete(ctx, emotionSystemPrompt, userPrompt, 0.5, 600)
	if err != nil {
		log.Printf("Emotion analysis failed, using fallback: %v", err)
		return fallbackEmotion()
	}

	var analysis response_models.EmotionAnalysis
	if err := json.Unmarshal([]byte(utils.StripJSONFence(content)), &analysis); err != nil || analysis.PrimaryEmotion == "" {
		log.Printf("Unparseable emotion output, using fallback: %v", err)
		return fallbackEmotion()
	}
	return analysis
}

func describeTone(tone string) string {
	if desc, ok := toneDescriptions[tone]; ok {
		return desc
	}
	if tone == "" {
		return toneDescriptions["direct"]
	}
	return tone
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func clampCount(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func fallbackHooks(niche, topic string) []string {
	return []string{
		fmt.Sprintf("Nobody tells you this about %s…", topic),
		fmt.Sprintf("Stop getting %s wrong, do this instead 👇", topic),
		fmt.Sprintf("If I started over in %s today, here's what I'd do:", niche),
	}
}

func fallbackCaptions(niche, topic, cta string) []string {
	if cta == "" {
		cta = "Save this video!"
	}
	return []string{
		fmt.Sprintf("Learn %s the simple, practical way. %s", topic, cta),
		fmt.Sprintf("If you want results in %s, you need to know this. %s", niche, cta),
		fmt.Sprintf("The secret to %s nobody talks about. %s", topic, cta),
	}
}

func fallbackHashtags(niche, topic string) []string {
	nicheTag := strings.ToLower(strings.ReplaceAll(niche, " ", ""))
	topicTag := strings.ToLower(strings.ReplaceAll(topic, " ", ""))
	return []string{
		"#" + nicheTag, "#" + topicTag, "#viral", "#fyp", "#foryou",
		"#tips", "#learning", "#content", "#trending", "#explorepage",
	}
}

func fallbackEmotion() response_models.EmotionAnalysis {
	return response_models.EmotionAnalysis{
		PrimaryEmotion:    "neutral",
		Confidence:        0.5,
		EmotionsBreakdown: map[string]float64{"neutral": 1.0},
		Suggestions:       []string{"Add more emotional elements to the content"},
	}
}
