package api

import (
	"github.com/labstack/echo/v4"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListMedicines --> GET /api/medicines?category=
func (h *CatalogHandler) ListMedicines(c echo.Context) error {
	return c.JSON(200, h.catalogService.Medicines(c.QueryParam("category")))
}

// GetMedicine --> GET /api/medicines/:id
func (h *CatalogHandler) GetMedicine(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	medicine, err := h.catalogService.Medicine(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, medicine)
}

// ListTherapists --> GET /api/therapists
func (h *CatalogHandler) ListTherapists(c echo.Context) error {
	return c.JSON(200, h.catalogService.Therapists())
}

// GetTherapist --> GET /api/therapists/:id
func (h *CatalogHandler) GetTherapist(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	therapist, err := h.catalogService.Therapist(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, therapist)
}
