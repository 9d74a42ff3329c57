// internal/handlers/dispositivo.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/services"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

type DispositivoHandler struct {
	crudHandler[dto.DispositivoDTO, *dto.DispositivoDTO]
	service *services.DispositivoService
}

func NewDispositivoHandler(service *services.DispositivoService, appName string) *DispositivoHandler {
	return &DispositivoHandler{
		crudHandler: crudHandler[dto.DispositivoDTO, *dto.DispositivoDTO]{
			svc:         service,
			appName:     appName,
			entityName:  "dispositivo",
			displayName: "Dispositivo",
			basePath:    "/api/dispositivos",
		},
		service: service,
	}
}

// GET /api/dispositivos
func (h *DispositivoHandler) GetAll(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	dtos, total, err := h.service.FindAllPaginated(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SetPaginationHeaders(c, utils.CreatePaginationResult(dtos, total, params))
	c.JSON(http.StatusOK, dtos)
}
