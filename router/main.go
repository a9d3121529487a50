package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/sahilchouksey/unimatch-api/config"
	"github.com/sahilchouksey/unimatch-api/database"
	"github.com/sahilchouksey/unimatch-api/handlers"
	application_handlers "github.com/sahilchouksey/unimatch-api/handlers/applications"
	catalog_handlers "github.com/sahilchouksey/unimatch-api/handlers/catalog"
	chat_handlers "github.com/sahilchouksey/unimatch-api/handlers/chat"
	offer_handlers "github.com/sahilchouksey/unimatch-api/handlers/offers"
	student_handlers "github.com/sahilchouksey/unimatch-api/handlers/student"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/services/assistant"
	"github.com/sahilchouksey/unimatch-api/services/offers"
	"github.com/sahilchouksey/unimatch-api/services/storage"
	"github.com/sahilchouksey/unimatch-api/utils/auth"
	"github.com/sahilchouksey/unimatch-api/utils/cache"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/middleware"
)

// Services are built once and shared by the HTTP routes and the cron jobs
type Services struct {
	Students     *services.StudentService
	Catalog      *services.CatalogService
	Applications *services.ApplicationService
	Offers       *services.OfferService
	// Relay is nil when no chat API key is configured
	Relay *assistant.Relay
}

// NewServices wires repositories, the optional Redis cache, document
// storage and the chat relay. redisCache may be nil.
func NewServices(store database.Storage, redisCache *cache.RedisCache, env *config.EnviornmentVariable) (*Services, error) {
	log := logger.With("router")
	db := store.GetDB()

	thresholds, err := offers.LoadThresholds(env.THRESHOLDS_FILE)
	if err != nil {
		return nil, err
	}

	// Keep a nil *RedisCache out of the interface so services see "no cache"
	var kv services.Cache
	if redisCache != nil {
		kv = redisCache
	}

	students := repository.NewStudentRepository(db)
	catalog := repository.NewCatalogRepository(db)
	applications := repository.NewApplicationRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	quizzes := repository.NewQuizRepository(db)

	var offerOpts []services.OfferServiceOption
	spaces, err := storage.NewSpacesClient(storage.ConfigFromEnv(env))
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		log.Warn().Msg("Spaces storage not configured, offer document uploads disabled")
	case err != nil:
		return nil, err
	default:
		offerOpts = append(offerOpts, services.WithDocumentStore(spaces))
	}

	relay, err := assistant.NewRelay(assistant.Config{
		APIKey:        env.CHAT_API_KEY,
		BaseURL:       env.CHAT_BASE_URL,
		Model:         env.CHAT_MODEL,
		FallbackModel: env.CHAT_FALLBACK_MODEL,
	})
	switch {
	case errors.Is(err, assistant.ErrNotConfigured):
		log.Warn().Msg("Chat API key not set, assistant disabled")
		relay = nil
	case err != nil:
		return nil, err
	}

	return &Services{
		Students:     services.NewStudentService(students, catalog, quizzes, kv, env.STORE_TIMEOUT),
		Catalog:      services.NewCatalogService(catalog, env.STORE_TIMEOUT),
		Applications: services.NewApplicationService(applications, catalog, env.STORE_TIMEOUT),
		Offers:       services.NewOfferService(students, applications, offerRepo, thresholds, kv, env.STORE_TIMEOUT, offerOpts...),
		Relay:        relay,
	}, nil
}

// SetupRoutes registers every route under /api/v1 plus /ping
func SetupRoutes(app *fiber.App, store database.Storage, redisCache *cache.RedisCache, svc *Services, env *config.EnviornmentVariable) error {
	if env.JWT_SECRET == "" {
		return errors.New("JWT_SECRET environment variable is not set")
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: env.JWT_SECRET,
		Issuer: env.JWT_ISSUER,
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, svc.Students)

	var chatRelay chat_handlers.Completer
	if svc.Relay != nil {
		chatRelay = svc.Relay
	}

	catalogHandler := catalog_handlers.NewCatalogHandler(svc.Catalog)
	studentHandler := student_handlers.NewStudentHandler(svc.Students)
	applicationHandler := application_handlers.NewApplicationHandler(svc.Applications)
	offerHandler := offer_handlers.NewOfferHandler(svc.Offers)
	chatHandler := chat_handlers.NewChatHandler(chatRelay, env.CHAT_SYSTEM_PROMPT)

	// Apply security middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    env.AllowedOrigins(),
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
		AccessLog:         true,
		Unlimited:         []string{"/ping"},
	})

	// Health check endpoint (public)
	var cacheCheck handlers.HealthChecker
	if redisCache != nil {
		cacheCheck = redisCache
	}
	app.Get("/ping", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store, cacheCheck)
	})

	// API v1 group
	api := app.Group("/api/v1")

	// Catalog routes (public reads, admin writes)
	api.Get("/universities", catalogHandler.ListUniversities)
	api.Get("/bursaries", catalogHandler.ListBursaries)
	api.Post("/bursaries", authMiddleware.RequireAdmin(), catalogHandler.CreateBursary)
	api.Get("/careers", catalogHandler.ListCareers)
	api.Get("/residences", catalogHandler.ListResidences)

	courses := api.Group("/courses")
	courses.Get("/", catalogHandler.ListCourses)
	courses.Get("/:id", catalogHandler.GetCourse)
	courses.Get("/:id/eligibility", authMiddleware.Required(), studentHandler.CourseEligibility)
	courses.Post("/", authMiddleware.RequireAdmin(), catalogHandler.CreateCourse)
	courses.Put("/:id/requirements", authMiddleware.RequireAdmin(), catalogHandler.UpdateCourseRequirements)

	// Student routes (protected)
	me := api.Group("/me", authMiddleware.Required())
	me.Put("/marks", studentHandler.SubmitMarks)
	me.Get("/marks", studentHandler.GetMarks)
	me.Get("/score", studentHandler.GetScore)
	me.Get("/matches/courses", studentHandler.CourseMatches)
	me.Get("/matches/bursaries", studentHandler.BursaryMatches)
	me.Get("/matches/careers", studentHandler.CareerMatches)
	me.Put("/quiz", studentHandler.SubmitQuiz)
	me.Get("/roommates", studentHandler.Roommates)

	me.Post("/applications", applicationHandler.Apply)
	me.Get("/applications", applicationHandler.List)

	me.Post("/offers/generate", offerHandler.Generate)
	me.Get("/offers", offerHandler.List)
	me.Post("/offers/:id/accept", offerHandler.Accept)
	me.Post("/offers/:id/decline", offerHandler.Decline)
	me.Post("/offers/:id/documents", offerHandler.UploadDocument)

	// Chat is rate limited per student when Redis is available
	chatRoute := []fiber.Handler{authMiddleware.Required()}
	if redisCache != nil {
		limiter := middleware.NewChatRateLimiter(redisCache, env.CHAT_RATE_LIMIT, time.Minute)
		chatRoute = append(chatRoute, limiter.Handler())
	}
	api.Post("/chat", append(chatRoute, chatHandler.SendMessage)...)

	return nil
}
