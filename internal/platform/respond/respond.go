// Package respond agrupa los helpers de respuesta JSON que antes estaban
// duplicados en cada handler de dominio.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"pet-care-manager/internal/middleware"
	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/platform/validation"
	"pet-care-manager/internal/recordstore"
)

const maxBodyBytes = 15 << 20 // las imágenes llegan como data URL

var ErrBodyTooLarge = errors.New("request body too large")

// ErrorBody es el cuerpo de todas las respuestas de error.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Decode lee un único objeto JSON del body. Campos desconocidos son error.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %v", validation.ErrInvalidInput, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: body must contain a single JSON object", validation.ErrInvalidInput)
	}
	return nil
}

// Error traduce errores de dominio a status HTTP.
// notFound es el mensaje para recordstore.ErrNotFound (p.ej. "pet not found").
// Usa el logger del request si middleware.RequestLogger dejó uno.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error, notFound string) {
	log = middleware.LoggerFrom(r.Context(), log)

	var valErr *validation.Error
	switch {
	case errors.As(err, &valErr):
		JSON(w, http.StatusBadRequest, ErrorBody{Error: validation.ErrInvalidInput.Error(), Fields: valErr.Fields})
	case errors.Is(err, ErrBodyTooLarge):
		JSON(w, http.StatusRequestEntityTooLarge, ErrorBody{Error: err.Error()})
	case errors.Is(err, validation.ErrInvalidInput):
		JSON(w, http.StatusBadRequest, ErrorBody{Error: err.Error()})
	case errors.Is(err, recordstore.ErrNotFound):
		if notFound == "" {
			notFound = "not found"
		}
		JSON(w, http.StatusNotFound, ErrorBody{Error: notFound})
	case errors.Is(err, recordstore.ErrCorruptData):
		log.Error("stored data is corrupt", map[string]any{"error": err})
		JSON(w, http.StatusInternalServerError, ErrorBody{Error: "stored data is corrupt"})
	default:
		log.Error("request failed", map[string]any{"error": err})
		JSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal error"})
	}
}
