package pets

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/platform/respond"
)

const notFoundMsg = "pet not found"

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// petRequest es el cuerpo para crear o reemplazar una mascota.
type petRequest struct {
	Name  string `json:"name" example:"Bello"`
	Type  string `json:"type" example:"Hund"` // vacío => Hund
	Age   *int   `json:"age" example:"3"`
	Image string `json:"image"` // data URL o URL; vacío => placeholder
}

func (req petRequest) input() CreateInput {
	return CreateInput{Name: req.Name, Type: req.Type, Age: req.Age, Image: req.Image}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Registra una mascota nueva. `type` vacío se guarda como `Hund` y `image` vacía recibe una imagen de ejemplo.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} Pet
// @Failure 400 {object} respond.ErrorBody "invalid json / campos inválidos"
// @Failure 500 {object} respond.ErrorBody
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, log, err, notFoundMsg)
			return
		}

		p, err := svc.Create(r.Context(), req.input())
		if err != nil {
			respond.Error(w, r, log, err, notFoundMsg)
			return
		}

		respond.JSON(w, http.StatusCreated, p)
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} Pet
// @Failure 500 {object} respond.ErrorBody
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err, notFoundMsg)
			return
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 404 {object} respond.ErrorBody "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, r, log, err, notFoundMsg)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary Reemplazar mascota
// @Description Reemplaza nombre, especie y edad. Si `image` viene vacía se conserva la actual.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 200 {object} Pet
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, log, err, notFoundMsg)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), req.input())
		if err != nil {
			respond.Error(w, r, log, err, notFoundMsg)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra solo el perfil. Citas, planes de comida y fotos de la mascota se conservan.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 500 {object} respond.ErrorBody
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			respond.Error(w, r, log, err, notFoundMsg)
			return
		}
		respond.NoContent(w)
	}
}
