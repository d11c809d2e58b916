package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/XpenseXpress/xpense_backend/internal/apperrors"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
	"github.com/XpenseXpress/xpense_backend/internal/middleware"
)

// RegisterValidatorTagNames makes validator report field names from json tags
// so violation payloads match the wire field names clients sent.
func RegisterValidatorTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// violationMessage renders one validator failure as a client-facing sentence.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on the %s rule", fe.Field(), fe.Tag())
	}
}

// fieldPath strips the top-level struct name from a validator namespace, so
// "CreateExpenseReportRequest.header.total" becomes "header.total".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// respondBindError writes a 400 envelope for a request-binding failure. Every
// violation is collected, never just the first.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		violations := make([]dto.ValidationViolation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, dto.ValidationViolation{
				Field:   fieldPath(fe),
				Message: violationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, dto.Response{
			Success: false,
			Message: "Validation failed",
			Errors:  violations,
		})
		return
	}

	c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
}

// respondError maps a service or repository error to the common envelope.
// Raw error detail is logged, never echoed to the client.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(notFoundMessage))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Fail("A resource with the given identity already exists"))
	case errors.Is(err, apperrors.ErrPoolTimeout):
		c.JSON(http.StatusServiceUnavailable, dto.Fail("Service is temporarily overloaded, please retry"))
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500 {
			c.JSON(appErr.Code, dto.Fail(appErr.Message))
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("unhandled error", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}
