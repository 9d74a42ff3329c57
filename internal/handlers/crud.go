// internal/handlers/crud.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tienda/dispositivos-backend/internal/utils"
)

// crudService is the slice of the service surface shared by every catalog
// entity. Listing is excluded: pagination differs per resource.
type crudService[D any] interface {
	Save(d *D) (*D, error)
	Update(d *D) (*D, error)
	PartialUpdate(d *D) (*D, error)
	FindOne(id int64) (*D, error)
	Exists(id int64) (bool, error)
	Delete(id int64) error
}

type identifiable interface {
	GetID() *int64
}

// crudHandler implements the per-entity REST surface shared by every
// resource: create, full and partial update, single fetch, delete. Each
// entity handler embeds an instance and adds its own listing endpoint.
type crudHandler[D any, P interface {
	*D
	identifiable
}] struct {
	svc         crudService[D]
	appName     string
	entityName  string
	displayName string
	basePath    string

	// prepareCreate, when set, adjusts a validated body before it is saved.
	prepareCreate func(c *gin.Context, d P)
}

func (h *crudHandler[D, P]) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, fmt.Sprintf("Invalid %s ID", h.entityName), nil)
		return 0, false
	}
	return id, true
}

func (h *crudHandler[D, P]) bind(c *gin.Context, d any) bool {
	if err := c.ShouldBindJSON(d); err != nil {
		utils.BadRequestResponse(c, "Malformed request body", err.Error())
		return false
	}
	return true
}

// requireExists answers false after writing the idnotfound response.
func (h *crudHandler[D, P]) requireExists(c *gin.Context, id int64) bool {
	exists, err := h.svc.Exists(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return false
	}
	if !exists {
		utils.AlertErrorResponse(c, h.appName, utils.NewNotFoundAlertError(
			"Entity not found", h.entityName, "idnotfound"))
		return false
	}
	return true
}

// POST /api/{resource}
func (h *crudHandler[D, P]) Create(c *gin.Context) {
	var d D
	if !h.bind(c, &d) {
		return
	}

	if P(&d).GetID() != nil {
		utils.AlertErrorResponse(c, h.appName, utils.NewBadRequestAlertError(
			fmt.Sprintf("A new %s cannot already have an ID", h.entityName), h.entityName, "idexists"))
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&d)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if h.prepareCreate != nil {
		h.prepareCreate(c, &d)
	}

	result, err := h.svc.Save(&d)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	id := *P(result).GetID()
	c.Header("Location", h.basePath+"/"+strconv.FormatInt(id, 10))
	utils.SetEntityCreationAlert(c, h.appName, h.entityName, id)
	c.JSON(http.StatusCreated, result)
}

// PUT /api/{resource}/:id
func (h *crudHandler[D, P]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var d D
	if !h.bind(c, &d) {
		return
	}

	if alertErr := checkUpdateID(id, P(&d).GetID(), h.entityName); alertErr != nil {
		utils.AlertErrorResponse(c, h.appName, alertErr)
		return
	}
	if !h.requireExists(c, id) {
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&d)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.svc.Update(&d)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SetEntityUpdateAlert(c, h.appName, h.entityName, id)
	c.JSON(http.StatusOK, result)
}

// PATCH /api/{resource}/:id
// Merge-patch semantics, so full field validation is skipped.
func (h *crudHandler[D, P]) PartialUpdate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var d D
	if !h.bind(c, &d) {
		return
	}

	if alertErr := checkUpdateID(id, P(&d).GetID(), h.entityName); alertErr != nil {
		utils.AlertErrorResponse(c, h.appName, alertErr)
		return
	}
	if !h.requireExists(c, id) {
		return
	}

	result, err := h.svc.PartialUpdate(&d)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if result == nil {
		utils.NotFoundResponse(c, h.displayName+" not found")
		return
	}

	utils.SetEntityUpdateAlert(c, h.appName, h.entityName, id)
	c.JSON(http.StatusOK, result)
}

// GET /api/{resource}/:id
func (h *crudHandler[D, P]) GetOne(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.FindOne(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if result == nil {
		utils.NotFoundResponse(c, h.displayName+" not found")
		return
	}

	c.JSON(http.StatusOK, result)
}

// DELETE /api/{resource}/:id
func (h *crudHandler[D, P]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	// Deletion is idempotent at the API boundary: a missing record still
	// yields 204.
	if err := h.svc.Delete(id); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SetEntityDeletionAlert(c, h.appName, h.entityName, id)
	c.Status(http.StatusNoContent)
}
