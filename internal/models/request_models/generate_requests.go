package request_models

type HookRequest struct {
	Niche    string `json:"niche" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
	Tone     string `json:"tone"`
	Platform string `json:"platform"`
	Variants int    `json:"variants"`
}

type CaptionRequest struct {
	Niche        string `json:"niche" binding:"required"`
	Topic        string `json:"topic" binding:"required"`
	Tone         string `json:"tone"`
	ProductName  string `json:"product_name"`
	CallToAction string `json:"call_to_action"`
	MaxLength    int    `json:"max_length"`
	Variants     int    `json:"variants"`
}

type HashtagRequest struct {
	Niche           string `json:"niche" binding:"required"`
	Topic           string `json:"topic" binding:"required"`
	Platform        string `json:"platform"`
	Count           int    `json:"count"`
	IncludeTrending *bool  `json:"include_trending"`
}

type EmotionRequest struct {
	Text    string `json:"text" binding:"required"`
	Context string `json:"context"`
}

type CompleteRequest struct {
	Niche          string `json:"niche" binding:"required"`
	Topic          string `json:"topic" binding:"required"`
	Tone           string `json:"tone"`
	Platform       string `json:"platform"`
	ProductName    string `json:"product_name"`
	CallToAction   string `json:"call_to_action"`
	AnalyzeEmotion bool   `json:"analyze_emotion"`
}
