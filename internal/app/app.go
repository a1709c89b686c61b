package app

import (
	"fmt"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"personatag/internal/config"
	"personatag/internal/services"
	"personatag/internal/shopify"
	"personatag/pkg/classifier"
)

// App wires the collaborators together once at startup; handlers and
// commands receive it by reference and hold no globals.
type App struct {
	Config *config.Config

	Classifier    classifier.Classifier
	ShopifyClient *shopify.Client

	ClassificationService *services.ClassificationService
	ProfileSyncService    *services.ProfileSyncService
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initClassifier(); err != nil {
		return nil, err
	}
	app.initProfileStore()

	app.ClassificationService = services.NewClassificationService(app.Classifier)
	app.ProfileSyncService = services.NewProfileSyncService(app.ShopifyClient)

	return app, nil
}

func (a *App) initClassifier() error {
	model := a.Config.Classifier.Model

	switch a.Config.Classifier.Provider {
	case "openai":
		apiKey := a.Config.Classifier.OpenaiApiKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			log.Warn("OpenAI API key not provided. Classification will be disabled.")
			a.Classifier = classifier.NewOpenAIClassifier(nil, model)
			return nil
		}
		a.Classifier = classifier.NewOpenAIClassifier(openai.NewClient(apiKey), model)
	case "gemini":
		gc, err := classifier.NewGeminiClassifier(a.Config.Classifier.GoogleApiKey, model)
		if err != nil {
			return fmt.Errorf("failed to initialize gemini classifier: %w", err)
		}
		a.Classifier = gc
	default:
		return fmt.Errorf("unknown classifier provider: %s", a.Config.Classifier.Provider)
	}

	log.Infof("Classifier initialized: provider=%s model=%s", a.Classifier.Name(), model)
	return nil
}

func (a *App) initProfileStore() {
	a.ShopifyClient = shopify.NewClient(shopify.Config{
		ShopDomain:  a.Config.Shopify.ShopDomain,
		APIVersion:  a.Config.Shopify.APIVersion,
		AccessToken: a.Config.Shopify.AdminToken,
		Timeout:     time.Duration(a.Config.Shopify.TimeoutSeconds) * time.Second,
	})
}
