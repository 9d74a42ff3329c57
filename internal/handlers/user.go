// internal/handlers/user.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tienda/dispositivos-backend/internal/services"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

// UserHandler serves the read-only account listing on the administration
// surface.
type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GET /api/admin/users
func (h *UserHandler) GetAll(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	dtos, total, err := h.service.FindAllPaginated(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SetPaginationHeaders(c, utils.CreatePaginationResult(dtos, total, params))
	c.JSON(http.StatusOK, dtos)
}

// GET /api/admin/users/:login
func (h *UserHandler) GetOne(c *gin.Context) {
	login := c.Param("login")

	result, err := h.service.FindOneByLogin(login)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if result == nil {
		utils.NotFoundResponse(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, result)
}
