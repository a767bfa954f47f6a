package response_models

type HooksResponse struct {
	Hooks          []string `json:"hooks"`
	RemainingQuota int      `json:"remaining_quota"`
}

type CaptionsResponse struct {
	Captions       []string `json:"captions"`
	RemainingQuota int      `json:"remaining_quota"`
}

type HashtagsResponse struct {
	Hashtags       []string `json:"hashtags"`
	RemainingQuota int      `json:"remaining_quota"`
}

type EmotionAnalysis struct {
	PrimaryEmotion    string             `json:"primary_emotion"`
	Confidence        float64            `json:"confidence"`
	EmotionsBreakdown map[string]float64 `json:"emotions_breakdown"`
	Suggestions       []string           `json:"suggestions"`
}

type EmotionResponse struct {
	Analysis       EmotionAnalysis `json:"analysis"`
	RemainingQuota int             `json:"remaining_quota"`
}

type CompleteResponse struct {
	Hooks          []string         `json:"hooks"`
	Captions       []string         `json:"captions"`
	Hashtags       []string         `json:"hashtags"`
	Emotion        *EmotionAnalysis `json:"emotion,omitempty"`
	RemainingQuota int              `json:"remaining_quota"`
}

type GenerationHistoryItem struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	TokensUsed int    `json:"tokens_used"`
	CreatedAt  string `json:"created_at"`
}

type GenerationStats struct {
	Total  int64            `json:"total"`
	ByType map[string]int64 `json:"by_type"`
}
