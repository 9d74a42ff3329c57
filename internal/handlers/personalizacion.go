// internal/handlers/personalizacion.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/services"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

type PersonalizacionHandler struct {
	crudHandler[dto.PersonalizacionDTO, *dto.PersonalizacionDTO]
	service *services.PersonalizacionService
}

func NewPersonalizacionHandler(service *services.PersonalizacionService, appName string) *PersonalizacionHandler {
	return &PersonalizacionHandler{
		crudHandler: crudHandler[dto.PersonalizacionDTO, *dto.PersonalizacionDTO]{
			svc:         service,
			appName:     appName,
			entityName:  "personalizacion",
			displayName: "Personalizacion",
			basePath:    "/api/personalizacions",
		},
		service: service,
	}
}

// GET /api/personalizacions
func (h *PersonalizacionHandler) GetAll(c *gin.Context) {
	dtos, err := h.service.FindAll()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dtos)
}
