package offers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/handlers"
	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/response"
	"github.com/sahilchouksey/unimatch-api/utils/validation"
)

// OfferHandler handles offer generation, responses and condition documents
type OfferHandler struct {
	offers *services.OfferService
	log    zerolog.Logger
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offers *services.OfferService) *OfferHandler {
	return &OfferHandler{
		offers: offers,
		log:    logger.With("offer-handler"),
	}
}

// GenerateResponse summarises one generation run
type GenerateResponse struct {
	Created    []model.Offer `json:"created"`
	Duplicates int           `json:"duplicates"`
}

// Generate handles POST /api/v1/me/offers/generate
func (h *OfferHandler) Generate(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	result, err := h.offers.GenerateForStudent(c.UserContext(), studentID)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}

	created := result.Created
	if created == nil {
		created = []model.Offer{}
	}
	return response.Success(c, GenerateResponse{Created: created, Duplicates: result.Duplicates})
}

// List handles GET /api/v1/me/offers
func (h *OfferHandler) List(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	list, err := h.offers.ListOffers(c.UserContext(), studentID)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Offer not found")
	}
	return response.Success(c, list)
}

// Accept handles POST /api/v1/me/offers/:id/accept
func (h *OfferHandler) Accept(c *fiber.Ctx) error {
	return h.respond(c, true)
}

// Decline handles POST /api/v1/me/offers/:id/decline
func (h *OfferHandler) Decline(c *fiber.Ctx) error {
	return h.respond(c, false)
}

func (h *OfferHandler) respond(c *fiber.Ctx, accept bool) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}
	offerID, ok := handlers.ParamID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid offer ID")
	}

	offer, err := h.offers.Respond(c.UserContext(), studentID, offerID, accept)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Offer not found")
	}
	return response.SuccessWithMessage(c, "Offer "+string(offer.Status), offer)
}

// UploadDocument handles POST /api/v1/me/offers/:id/documents (multipart: condition, file)
func (h *OfferHandler) UploadDocument(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}
	offerID, ok := handlers.ParamID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid offer ID")
	}

	condition := validation.SanitizeString(c.FormValue("condition"))
	if condition == "" {
		return response.ValidationError(c, "", fiber.Map{"condition": "condition is required"})
	}
	file, err := c.FormFile("file")
	if err != nil {
		return response.ValidationError(c, "", fiber.Map{"file": "file is required"})
	}

	doc, err := h.offers.UploadConditionDocument(c.UserContext(), studentID, offerID, condition, file)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Offer not found")
	}
	return response.Created(c, doc)
}
