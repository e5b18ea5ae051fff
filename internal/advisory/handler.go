package advisory

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-manager/internal/middleware"
	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/platform/respond"
)

// PetSummarizer devuelve el contexto de mascotas ("Bello (Hund, 3 Jahre), ...").
type PetSummarizer interface {
	Summary(ctx context.Context) (string, error)
}

func RegisterRoutes(r chi.Router, gw *Gateway, pets PetSummarizer, log logger.Logger) {
	r.Route("/advice", func(ar chi.Router) {
		ar.Get("/", greetingHandler())
		ar.Post("/", adviceHandler(gw, pets, log))
	})
}

type greetingResponse struct {
	Greeting string `json:"greeting"`
}

type adviceRequest struct {
	Question string `json:"question" example:"Mein Hund hustet, was soll ich tun?"`
}

type adviceResponse struct {
	Answer string `json:"answer"`
}

// greetingHandler godoc
// @Summary Saludo del asistente
// @Tags advice
// @Produce json
// @Success 200 {object} greetingResponse
// @Router /advice [get]
func greetingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, greetingResponse{Greeting: Greeting})
	}
}

// adviceHandler godoc
// @Summary Preguntar al asistente
// @Description Envía la pregunta junto con el resumen de todas las mascotas. Siempre responde 200; los fallos del proveedor vuelven como texto en `answer`.
// @Tags advice
// @Accept json
// @Produce json
// @Param payload body adviceRequest true "Pregunta"
// @Success 200 {object} adviceResponse
// @Failure 400 {object} respond.ErrorBody "invalid json"
// @Router /advice [post]
func adviceHandler(gw *Gateway, pets PetSummarizer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adviceRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, log, err, "")
			return
		}

		summary := ""
		if pets != nil {
			s, err := pets.Summary(r.Context())
			if err != nil {
				// sin contexto igual se puede responder
				middleware.LoggerFrom(r.Context(), log).Warn("pet summary unavailable", map[string]any{"error": err})
			} else {
				summary = s
			}
		}

		respond.JSON(w, http.StatusOK, adviceResponse{Answer: gw.GetAdvice(r.Context(), req.Question, summary)})
	}
}
