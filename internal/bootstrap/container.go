package bootstrap

import (
	"context"
	"log"

	"ai-brainstorm-be/internal/config"
	"ai-brainstorm-be/internal/constant"
	"ai-brainstorm-be/internal/controller"
	"ai-brainstorm-be/internal/handler"
	"ai-brainstorm-be/internal/pkg/logger"
	"ai-brainstorm-be/internal/repository/memory"
	"ai-brainstorm-be/internal/repository/unitofwork"
	"ai-brainstorm-be/internal/service"
	"ai-brainstorm-be/internal/websocket"
	"ai-brainstorm-be/pkg/brainstorm/branch"
	"ai-brainstorm-be/pkg/events"
	"ai-brainstorm-be/pkg/llm"
	"ai-brainstorm-be/pkg/llm/factory"

	pktNats "ai-brainstorm-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ProjectController controller.IProjectController
	FeatureController controller.IFeatureController
	AiController      controller.IAiController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	BoardHandler *handler.BoardHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM provider. A hosted provider without a credential is a
	// supported state: the provider stays nil and every AI operation
	// serves fallback output.
	var llmProvider llm.LLMProvider
	if cfg.Ai.Provider == "openai" && cfg.Ai.APIKey == "" {
		log.Printf("[WARN] LLM provider %q configured without AI_API_KEY; AI features run on fallbacks", cfg.Ai.Provider)
	} else {
		baseURL := cfg.Ai.OllamaBaseURL
		if cfg.Ai.Provider == "openai" {
			baseURL = cfg.Ai.OpenAIBaseURL
		}
		p, err := factory.NewLLMProvider(cfg.Ai.Provider, cfg.Ai.Model, baseURL, cfg.Ai.APIKey)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM provider: %v; AI features run on fallbacks", err)
		} else {
			llmProvider = p
			log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)
		}
	}

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket hub with its own log file
	wsLogger := logger.NewIsolatedLogger("logs/board.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Audit trail for events mirrored through NATS
	if natsSub != nil {
		err := natsSub.Subscribe("events.>", "event-audit-logger", func(ctx context.Context, evt events.Event) error {
			sysLogger.Info("EventAudit", "Domain event", map[string]interface{}{
				"type": evt.EventType(),
				"data": evt.Payload(),
			})
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to start event audit subscriber: %v", err)
		}
	}

	// 5. Services
	analysisCache := memory.NewAnalysisCache()
	analyzer := branch.NewAnalyzer(llmProvider, sysLogger)

	publisherService := service.NewPublisherService(constant.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.ActivityTopic,
		uowFactory,
		wsHub,
		natsPub,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, cfg.Auth)
	projectService := service.NewProjectService(uowFactory, publisherService, sysLogger)
	featureService := service.NewFeatureService(uowFactory, publisherService, analysisCache, sysLogger)
	aiService := service.NewAiService(
		uowFactory,
		llmProvider,
		analyzer,
		analysisCache,
		publisherService,
		sysLogger,
		cfg.Ai.RequestTimeout,
	)

	// 6. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		ProjectController: controller.NewProjectController(projectService),
		FeatureController: controller.NewFeatureController(featureService),
		AiController:      controller.NewAiController(aiService),

		ConsumerService: consumerService,

		BoardHandler: handler.NewBoardHandler(wsHub, wsLogger),
		WebSocketHub: wsHub,
	}
}
