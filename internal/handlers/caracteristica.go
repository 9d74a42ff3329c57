// internal/handlers/caracteristica.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/services"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

type CaracteristicaHandler struct {
	crudHandler[dto.CaracteristicaDTO, *dto.CaracteristicaDTO]
	service *services.CaracteristicaService
}

func NewCaracteristicaHandler(service *services.CaracteristicaService, appName string) *CaracteristicaHandler {
	return &CaracteristicaHandler{
		crudHandler: crudHandler[dto.CaracteristicaDTO, *dto.CaracteristicaDTO]{
			svc:         service,
			appName:     appName,
			entityName:  "caracteristica",
			displayName: "Caracteristica",
			basePath:    "/api/caracteristicas",
		},
		service: service,
	}
}

// GET /api/caracteristicas
func (h *CaracteristicaHandler) GetAll(c *gin.Context) {
	dtos, err := h.service.FindAll()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dtos)
}
