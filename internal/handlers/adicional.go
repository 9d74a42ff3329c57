// internal/handlers/adicional.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/services"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

type AdicionalHandler struct {
	crudHandler[dto.AdicionalDTO, *dto.AdicionalDTO]
	service *services.AdicionalService
}

func NewAdicionalHandler(service *services.AdicionalService, appName string) *AdicionalHandler {
	return &AdicionalHandler{
		crudHandler: crudHandler[dto.AdicionalDTO, *dto.AdicionalDTO]{
			svc:         service,
			appName:     appName,
			entityName:  "adicional",
			displayName: "Adicional",
			basePath:    "/api/adicionals",
		},
		service: service,
	}
}

// GET /api/adicionals
func (h *AdicionalHandler) GetAll(c *gin.Context) {
	dtos, err := h.service.FindAll()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dtos)
}
