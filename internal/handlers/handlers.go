// internal/handlers/handlers.go
package handlers

import (
	"github.com/tienda/dispositivos-backend/internal/utils"
)

// checkUpdateID runs the shared ID validation for PUT and PATCH: the body
// must carry an ID and it must match the path.
func checkUpdateID(pathID int64, bodyID *int64, entityName string) *utils.BadRequestAlertError {
	if bodyID == nil {
		return utils.NewBadRequestAlertError("Invalid id", entityName, "idnull")
	}
	if *bodyID != pathID {
		return utils.NewBadRequestAlertError("Invalid ID", entityName, "idinvalid")
	}
	return nil
}
