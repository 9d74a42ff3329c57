// internal/utils/alert.go
package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// BadRequestAlertError is a terminal, client-caused validation failure raised
// by the API layer. It carries the entity name and a machine-readable error
// key that clients match on (idexists, idnull, idinvalid, idnotfound).
type BadRequestAlertError struct {
	EntityName string
	ErrorKey   string
	Message    string
	Status     int
}

func (e *BadRequestAlertError) Error() string {
	return fmt.Sprintf("%s: %s (%s.%s)", e.Message, e.ErrorKey, e.EntityName, e.ErrorKey)
}

func NewBadRequestAlertError(message, entityName, errorKey string) *BadRequestAlertError {
	return &BadRequestAlertError{
		EntityName: entityName,
		ErrorKey:   errorKey,
		Message:    message,
		Status:     http.StatusBadRequest,
	}
}

// NewNotFoundAlertError covers the idnotfound case, which surfaces as 404
// rather than 400.
func NewNotFoundAlertError(message, entityName, errorKey string) *BadRequestAlertError {
	return &BadRequestAlertError{
		EntityName: entityName,
		ErrorKey:   errorKey,
		Message:    message,
		Status:     http.StatusNotFound,
	}
}

// AlertErrorResponse renders an alert error with the X-<app>-error and
// X-<app>-params headers clients use to display translated messages.
func AlertErrorResponse(c *gin.Context, appName string, err *BadRequestAlertError) {
	c.Header("X-"+appName+"-error", "error."+err.ErrorKey)
	c.Header("X-"+appName+"-params", err.EntityName)
	ErrorResponse(c, err.Status, "error."+err.ErrorKey, err.Message, gin.H{
		"entityName": err.EntityName,
		"errorKey":   err.ErrorKey,
	})
}

// Alert headers attached to successful mutations.

func SetEntityCreationAlert(c *gin.Context, appName, entityName string, id int64) {
	setAlertHeaders(c, appName, appName+"."+entityName+".created", id)
}

func SetEntityUpdateAlert(c *gin.Context, appName, entityName string, id int64) {
	setAlertHeaders(c, appName, appName+"."+entityName+".updated", id)
}

func SetEntityDeletionAlert(c *gin.Context, appName, entityName string, id int64) {
	setAlertHeaders(c, appName, appName+"."+entityName+".deleted", id)
}

func setAlertHeaders(c *gin.Context, appName, message string, id int64) {
	c.Header("X-"+appName+"-alert", message)
	c.Header("X-"+appName+"-params", url.QueryEscape(strconv.FormatInt(id, 10)))
}
