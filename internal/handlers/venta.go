// internal/handlers/venta.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/services"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

type VentaHandler struct {
	crudHandler[dto.VentaDTO, *dto.VentaDTO]
	service *services.VentaService
}

func NewVentaHandler(service *services.VentaService, appName string) *VentaHandler {
	return &VentaHandler{
		crudHandler: crudHandler[dto.VentaDTO, *dto.VentaDTO]{
			svc:         service,
			appName:     appName,
			entityName:  "venta",
			displayName: "Venta",
			basePath:    "/api/ventas",
			// A sale without an explicit user is recorded against the caller.
			prepareCreate: func(c *gin.Context, d *dto.VentaDTO) {
				if d.User == nil || d.User.ID == nil {
					if userID, ok := utils.GetUserIDFromContext(c); ok {
						d.User = &dto.UserDTO{ID: &userID}
					}
				}
			},
		},
		service: service,
	}
}

// GET /api/ventas
func (h *VentaHandler) GetAll(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	dtos, total, err := h.service.FindAllPaginated(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SetPaginationHeaders(c, utils.CreatePaginationResult(dtos, total, params))
	c.JSON(http.StatusOK, dtos)
}
