package main

import (
	"context"
	"log"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"tripagent/config"
	"tripagent/database"
	"tripagent/router"

	"tripagent/pkg/agent"
	"tripagent/pkg/amap"
	"tripagent/pkg/auth"
	"tripagent/pkg/logstream"
	"tripagent/pkg/middleware"

	healthCtrlImp "tripagent/pkg/health/controllerImp"
	tripCtrlImp "tripagent/pkg/trip/controllerImp"
	tripRepoImp "tripagent/pkg/trip/repositoryImp"
	tripSvcImp "tripagent/pkg/trip/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) Chat model (mock fallback when no credentials)
	ctx := context.Background()
	var cm model.BaseChatModel
	if cfg.LLMAPIKey != "" {
		m, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: cfg.LLMEndpoint,
			Model:   cfg.LLMModel,
			APIKey:  cfg.LLMAPIKey,
		})
		if err != nil {
			log.Fatalf("create chat model: %v", err)
		}
		cm = m
	} else {
		log.Printf("[llm] no LLM_API_KEY set, using mock chat model")
		cm = agent.NewMockModel()
	}

	// 5) Map tools + agents
	amapClient := amap.New(cfg.AmapAPIKey)
	searchTool := amap.NewSearchTool(amapClient)
	weatherTool := amap.NewWeatherTool(amapClient)

	attractionAgent := agent.NewAttractionAgent(cm, searchTool)
	weatherAgent := agent.NewWeatherAgent(cm, weatherTool)
	hotelAgent := agent.NewHotelAgent(cm, searchTool)
	plannerAgent := agent.NewPlannerAgent(cm)

	// 6) Planning service + log streams
	streams := logstream.New()
	svc := tripSvcImp.NewTripService(attractionAgent, weatherAgent, hotelAgent, plannerAgent, streams, tripSvcImp.Options{
		MaxWorkers:       cfg.MaxWorkers,
		EnableCache:      cfg.EnableCache,
		CacheTTL:         cfg.CacheTTL,
		Verbose:          cfg.VerboseLogging,
		RetryOnRateLimit: cfg.RetryOnRateLimit,
	})

	// 7) Auth
	var verifier auth.Verifier
	if cfg.SupabaseJWTSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.SupabaseJWTSecret)
	} else {
		log.Printf("[auth] no SUPABASE_JWT_SECRET set, requests run anonymously")
		verifier = auth.NewDisabled()
	}

	// 8) Controllers + router
	repo := tripRepoImp.New(db)
	tripCtrl := tripCtrlImp.NewTripCtrl(svc, repo, streams)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, plannerAgent.Name(), len(attractionAgent.ToolNames()))

	r := router.New(e, tripCtrl, healthCtrl, middleware.OptionalAuth(verifier))

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
