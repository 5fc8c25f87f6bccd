package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ordereat-api/apperr"
	"ordereat-api/query"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindBadRequest, apperr.KindValidation:
		return http.StatusBadRequest
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON error. Unclassified errors are recorded on the context
// for the request logger and answered with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}

	_ = c.Error(err)
	message := "Something went wrong"
	if status == http.StatusServiceUnavailable {
		message = "Request was cancelled"
	}
	c.JSON(status, gin.H{"error": message})
}

// bindingError converts a gin binding failure into a Validation error, or into the
// BadRequest the query package reports for an unknown sort field or direction.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("Invalid request: %s", err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "sortby":
			_, _, sortErr := query.SortColumn(fmt.Sprint(fe.Value()))
			return sortErr
		case "sortdir":
			_, dirErr := query.ParseDirection(fmt.Sprint(fe.Value()))
			return dirErr
		}
		msgs = append(msgs, fieldMessage(fe))
	}
	return apperr.Validation("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email address"
	}
	return fe.Field() + " is invalid"
}

func idParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid %s", name)
	}
	return uint(id), nil
}

// bindJSON binds the request body into v and reports failures.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondError(c, bindingError(err))
		return false
	}
	return true
}
