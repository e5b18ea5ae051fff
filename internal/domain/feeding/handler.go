package feeding

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/feeding-plans", func(fr chi.Router) {
		fr.Post("/", createPlanHandler(svc, log))
		fr.Get("/", listPlansHandler(svc, log))
		fr.Delete("/{planID}", deletePlanHandler(svc, log))
	})
}

type createPlanRequest struct {
	PetID    string `json:"petId"`
	Time     string `json:"time" example:"07:30"`
	Amount   string `json:"amount" example:"200g"`
	FoodType string `json:"foodType" example:"Trockenfutter"`
}

// createPlanHandler godoc
// @Summary Crear plan de comida
// @Tags feeding
// @Accept json
// @Produce json
// @Param payload body createPlanRequest true "Toma diaria; time en HH:MM"
// @Success 201 {object} Plan
// @Failure 400 {object} respond.ErrorBody "invalid json / campos inválidos"
// @Failure 500 {object} respond.ErrorBody
// @Router /feeding-plans [post]
func createPlanHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlanRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, log, err, "")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.JSON(w, http.StatusCreated, p)
	}
}

// listPlansHandler godoc
// @Summary Listar planes de comida
// @Description Ordenados por hora ascendente.
// @Tags feeding
// @Produce json
// @Param pet_id query string false "Filtra por mascota"
// @Success 200 {array} Plan
// @Failure 500 {object} respond.ErrorBody
// @Router /feeding-plans [get]
func listPlansHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("pet_id")))
		if err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// deletePlanHandler godoc
// @Summary Borrar plan de comida
// @Tags feeding
// @Param planID path string true "ID del plan"
// @Success 204
// @Router /feeding-plans/{planID} [delete]
func deletePlanHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "planID")); err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.NoContent(w)
	}
}
