package gallery

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/gallery", func(gr chi.Router) {
		gr.Post("/", createItemHandler(svc, log))
		gr.Get("/", listItemsHandler(svc, log))
		gr.Delete("/{itemID}", deleteItemHandler(svc, log))
	})
}

type createItemRequest struct {
	PetID string `json:"petId"`
	URL   string `json:"url"`  // data URL o URL
	Date  string `json:"date"` // opcional, RFC 3339
	Note  string `json:"note"`
}

// createItemHandler godoc
// @Summary Agregar foto
// @Description Agrega una foto al principio de la galería. Sin `date` se usa el momento actual.
// @Tags gallery
// @Accept json
// @Produce json
// @Param payload body createItemRequest true "Foto"
// @Success 201 {object} Item
// @Failure 400 {object} respond.ErrorBody "invalid json / campos inválidos"
// @Failure 500 {object} respond.ErrorBody
// @Router /gallery [post]
func createItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createItemRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, log, err, "")
			return
		}

		it, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.JSON(w, http.StatusCreated, it)
	}
}

// listItemsHandler godoc
// @Summary Listar fotos
// @Description La más nueva primero.
// @Tags gallery
// @Produce json
// @Param pet_id query string false "Filtra por mascota"
// @Success 200 {array} Item
// @Failure 500 {object} respond.ErrorBody
// @Router /gallery [get]
func listItemsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("pet_id")))
		if err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// deleteItemHandler godoc
// @Summary Borrar foto
// @Tags gallery
// @Param itemID path string true "ID de la foto"
// @Success 204
// @Router /gallery/{itemID} [delete]
func deleteItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "itemID")); err != nil {
			respond.Error(w, r, log, err, "")
			return
		}
		respond.NoContent(w)
	}
}
