package appointments

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc, log))
		ar.Get("/", listAppointmentsHandler(svc, log))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc, log))
	})
}

// createAppointmentRequest es el cuerpo para registrar una cita.
type createAppointmentRequest struct {
	PetID string `json:"petId" example:"3f1c..."`
	Title string `json:"title" example:"Impfung"`
	Date  string `json:"date" example:"2025-03-01T10:00"` // ISO 8601
	Type  Type   `json:"type" enums:"vet,vaccine,grooming,other"`
	Notes string `json:"notes"`
}

// createAppointmentHandler godoc
// @Summary Crear cita
// @Description Registra una cita para una mascota. `type` vacío se guarda como `vet`. No se valida que la mascota exista.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos de la cita; date en ISO 8601"
// @Success 201 {object} Appointment
// @Failure 400 {object} respond.ErrorBody "invalid json / campos inválidos"
// @Failure 500 {object} respond.ErrorBody
// @Router /appointments [post]
func createAppointmentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, log, err, "")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.JSON(w, http.StatusCreated, a)
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Devuelve las citas ordenadas por fecha ascendente.
// @Tags appointments
// @Produce json
// @Param pet_id query string false "Filtra por mascota"
// @Success 200 {array} Appointment
// @Failure 500 {object} respond.ErrorBody
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("pet_id")))
		if err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// deleteAppointmentHandler godoc
// @Summary Borrar cita
// @Tags appointments
// @Param appointmentID path string true "ID de la cita"
// @Success 204
// @Failure 500 {object} respond.ErrorBody
// @Router /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.NoContent(w)
	}
}
