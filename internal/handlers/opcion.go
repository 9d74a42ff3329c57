// internal/handlers/opcion.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/services"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

type OpcionHandler struct {
	crudHandler[dto.OpcionDTO, *dto.OpcionDTO]
	service *services.OpcionService
}

func NewOpcionHandler(service *services.OpcionService, appName string) *OpcionHandler {
	return &OpcionHandler{
		crudHandler: crudHandler[dto.OpcionDTO, *dto.OpcionDTO]{
			svc:         service,
			appName:     appName,
			entityName:  "opcion",
			displayName: "Opcion",
			basePath:    "/api/opcions",
		},
		service: service,
	}
}

// GET /api/opcions
func (h *OpcionHandler) GetAll(c *gin.Context) {
	dtos, err := h.service.FindAll()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dtos)
}
