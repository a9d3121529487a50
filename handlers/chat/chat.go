package chat

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/handlers"
	"github.com/sahilchouksey/unimatch-api/services/assistant"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/response"
	"github.com/sahilchouksey/unimatch-api/utils/validation"
)

// Completer produces the assistant's next message for a conversation
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []assistant.Message) (*assistant.Reply, error)
}

// ChatHandler relays student conversations to the hosted model.
// The conversation is not stored; clients send the full history each time.
type ChatHandler struct {
	relay        Completer
	systemPrompt string
	validator    *validation.Validator
	log          zerolog.Logger
}

// NewChatHandler creates a chat handler. relay may be nil when the
// assistant is not configured; an empty systemPrompt uses the default.
func NewChatHandler(relay Completer, systemPrompt string) *ChatHandler {
	if systemPrompt == "" {
		systemPrompt = assistant.DefaultSystemPrompt
	}
	return &ChatHandler{
		relay:        relay,
		systemPrompt: systemPrompt,
		validator:    validation.NewValidator(),
		log:          logger.With("chat-handler"),
	}
}

// ChatMessage is one turn of the conversation
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,min=1,max=4000"`
}

// ChatRequest represents the request body for POST /chat
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,max=50,dive"`
}

// SendMessage handles POST /api/v1/chat
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}
	if h.relay == nil {
		return response.ServiceUnavailable(c, "Assistant is not configured")
	}

	var req ChatRequest
	if ok, err := handlers.ParseBody(c, h.validator, &req); !ok {
		return err
	}
	if req.Messages[len(req.Messages)-1].Role != "user" {
		return response.ValidationError(c, "The last message must come from the user", nil)
	}

	history := slice.Map(req.Messages, func(_ int, m ChatMessage) assistant.Message {
		return assistant.Message{Role: m.Role, Content: validation.SanitizeString(m.Content)}
	})

	reply, err := h.relay.Complete(c.UserContext(), h.systemPrompt, history)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Model not found")
	}

	h.log.Debug().Uint("student_id", studentID).Int("turns", len(history)).Str("model", reply.Model).Msg("Chat reply relayed")
	return response.Success(c, reply)
}
