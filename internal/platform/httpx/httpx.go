// Package httpx junta lo que antes se repetía en cada handler: escribir JSON,
// decodificar y validar el body, y traducir errores de dominio a status HTTP.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/juju/errors"

	"pet-grooming-shop/internal/platform/logger"
)

// ErrorResponse es el cuerpo de todo error.
type ErrorResponse struct {
	Error   string   `json:"error" example:"client 123.456.789-01 not found"`
	Details []string `json:"details,omitempty"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func Fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, ErrorResponse{Error: msg})
}

// Error traduce por tipo: NotValid 400, NotFound 404, AlreadyExists 409, resto 500.
// Los 500 se loguean y no exponen el mensaje interno.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, errors.NotValid):
		Fail(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, errors.NotFound):
		Fail(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, errors.AlreadyExists):
		Fail(w, r, http.StatusConflict, err.Error())
	default:
		log.Error("internal error", map[string]any{
			"error": errors.ErrorStack(err),
			"path":  r.URL.Path,
		})
		Fail(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Bind decodifica el body en dst y lo valida con los tags `validate`.
// Si falla ya respondió (400 json inválido, 422 validación) y devuelve false.
func Bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		Fail(w, r, http.StatusBadRequest, "invalid json")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			Fail(w, r, http.StatusBadRequest, err.Error())
			return false
		}
		JSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: describe(verrs),
		})
		return false
	}
	return true
}

func describe(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			out = append(out, fmt.Sprintf("field %s is required", e.Field()))
		case "oneof":
			out = append(out, fmt.Sprintf("field %s must be one of [%s]", e.Field(), e.Param()))
		case "gt", "gte", "lte", "min", "max":
			out = append(out, fmt.Sprintf("field %s must be %s %s", e.Field(), e.ActualTag(), e.Param()))
		case "datetime":
			out = append(out, fmt.Sprintf("field %s must match %s", e.Field(), e.Param()))
		default:
			out = append(out, fmt.Sprintf("field %s is not valid", e.Field()))
		}
	}
	return out
}
