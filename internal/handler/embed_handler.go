package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/embedding-server/internal/models"
	"github.com/ahmednasr/embedding-server/internal/service"
)

// EmbedHandler wires HTTP → EmbedService.
type EmbedHandler struct {
	svc service.EmbedService
}

// NewEmbedHandler creates an EmbedHandler.
func NewEmbedHandler(svc service.EmbedService) *EmbedHandler {
	return &EmbedHandler{svc: svc}
}

// Register mounts POST /embed and POST /embed/single on the given router.
func (h *EmbedHandler) Register(r fiber.Router) {
	r.Post("/embed", h.embed)
	r.Post("/embed/single", h.embedSingle)
}

// embed handles POST /embed  { "texts": ["...", ...] }
func (h *EmbedHandler) embed(c *fiber.Ctx) error {
	req, err := parseBatchRequest(c.Body())
	if err != nil {
		return err
	}

	embeddings, err := h.svc.EmbedBatch(c.UserContext(), req.Texts)
	if err != nil {
		return err
	}

	return c.JSON(models.BatchEmbedResponse{Embeddings: embeddings})
}

// embedSingle handles POST /embed/single  { "text": "..." }
func (h *EmbedHandler) embedSingle(c *fiber.Ctx) error {
	req, err := parseSingleRequest(c.Body())
	if err != nil {
		return err
	}

	embedding, err := h.svc.EmbedOne(c.UserContext(), req.Text)
	if err != nil {
		return err
	}

	return c.JSON(models.SingleEmbedResponse{Embedding: embedding})
}
