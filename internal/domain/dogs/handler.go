package dogs

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"doggo/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc))
		dr.Post("/", createDogHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Put("/{dogID}", updateDogHandler(svc))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
	})

	// Perros de un owner
	r.Get("/owners/{ownerID}/dogs", listOwnerDogsHandler(svc))
}

// Response: notes e image_url salen como null cuando no hay valor.
type Response struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Breed    string  `json:"breed"`
	Notes    *string `json:"notes"`
	ImageURL *string `json:"image_url"`
	OwnerID  int64   `json:"owner_id"`
}

func ToResponse(d Dog) Response {
	return Response{
		ID:       d.ID,
		Name:     d.Name,
		Breed:    d.Breed,
		Notes:    d.Notes,
		ImageURL: d.ImageURL,
		OwnerID:  d.OwnerID,
	}
}

func ToResponses(items []Dog) []Response {
	out := make([]Response, 0, len(items))
	for _, d := range items {
		out = append(out, ToResponse(d))
	}
	return out
}

func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}

// @Summary Perros de un owner
// @Tags dogs
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {array} Response
// @Router /owners/{ownerID}/dogs [get]
func listOwnerDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := web.IDParam(r, "ownerID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		items, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}

// @Summary Registrar perro
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del perro; notes e image_url opcionales"
// @Success 201 {object} Response
// @Failure 400 {object} web.ErrorBody "campo requerido u owner inexistente"
// @Router /dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := web.Decode(r, &in); err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, ToResponse(d))
	}
}

func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "dogID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponse(d))
	}
}

func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "dogID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		var in Input
		if err := web.Decode(r, &in); err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		d, err := svc.Update(r.Context(), id, in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponse(d))
	}
}

func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "dogID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			web.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
