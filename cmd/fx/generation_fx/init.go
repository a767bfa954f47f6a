package generation_fx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hookify/internal/api/controllers"
	"hookify/internal/repositories"
	"hookify/internal/services"
	"hookify/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerationClient,
	provideGenerationRepo,
	provideGenerationService,
	provideGenerationController,
)

// AIConfig holds configuration for text-generation clients
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideTextGenerationClient creates a text-generation client based on environment variables
func ProvideTextGenerationClient() (utils.TextGenerationClient, error) {
	config := getAIConfig()

	log.Printf("Initializing %s text-generation client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiClient(context.Background(), config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func provideGenerationRepo(db *gorm.DB) repositories.GenerationRepository {
	return repositories.NewGenerationRepository(db)
}

func provideGenerationService(
	client utils.TextGenerationClient,
	quotaService services.QuotaServiceInterface,
	generationRepo repositories.GenerationRepository,
) services.GenerationServiceInterface {
	return services.NewGenerationService(client, quotaService, generationRepo)
}

func provideGenerationController(generationService services.GenerationServiceInterface) *controllers.GenerationController {
	return controllers.NewGenerationController(generationService)
}

// getAIConfig reads configuration from environment variables
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("AI_MODEL", "gpt-4.1-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("AI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
