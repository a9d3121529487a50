package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/response"
)

// bodyLimit leaves room for a 10MB offer document plus multipart overhead
const bodyLimit = 12 * 1024 * 1024

type APIServer struct {
	app           *fiber.App
	listenAddress string
	log           zerolog.Logger
}

func NewAPIServer(listenAddress string) *APIServer {
	log := logger.With("api")
	return &APIServer{
		app: fiber.New(fiber.Config{
			AppName:      "unimatch-api",
			BodyLimit:    bodyLimit,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 90 * time.Second, // chat replies can take a while
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				if e, ok := err.(*fiber.Error); ok {
					return response.Fail(c, e.Code, e.Message, nil)
				}
				log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
				return response.InternalServerError(c, "")
			},
		}),
		listenAddress: listenAddress,
		log:           log,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

// Run blocks until the server stops
func (s *APIServer) Run() error {
	s.log.Info().Str("address", s.listenAddress).Msg("Starting API Server")
	return s.app.Listen(s.listenAddress)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *APIServer) Shutdown(timeout time.Duration) error {
	s.log.Info().Msg("Shutting down API Server")
	return s.app.ShutdownWithTimeout(timeout)
}
