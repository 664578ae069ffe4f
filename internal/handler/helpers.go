package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"candystock/internal/apierror"
	"candystock/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// idParam parses an integer path parameter. Returns false after writing the
// 400 response when the value is not a positive integer.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// respondError maps a tagged service error onto an HTTP status. Database and
// internal failures are attached to the Gin context for the error-handler
// middleware to log; only the safe message reaches the client.
func respondError(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
		return
	}

	switch e.Kind {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, apierror.New(e.Message))
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, apierror.New(e.Message))
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, apierror.New(e.Message))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New(e.Message))
	}
}
