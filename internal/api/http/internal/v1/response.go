package v1

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/perf-studios/waitlist-backend/internal/domain"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// validationErrorResponse renders the per-field violation set in a
// stable field order so repeated rejections of the same payload
// produce identical bodies.
func validationErrorResponse(c *gin.Context, verr *domain.ValidationError) {
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]ValidationError, 0, len(fields))
	for _, field := range fields {
		for _, message := range verr.Fields[field] {
			out = append(out, ValidationError{FieldKey: field, ErrorMessage: message})
		}
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       out,
	})
}
