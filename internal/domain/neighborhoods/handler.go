package neighborhoods

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"doggo/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/neighborhoods", func(nr chi.Router) {
		nr.Get("/", listNeighborhoodsHandler(svc))
		nr.Post("/", createNeighborhoodHandler(svc))
		nr.Get("/{neighborhoodID}", getNeighborhoodHandler(svc))
		nr.Put("/{neighborhoodID}", updateNeighborhoodHandler(svc))
		nr.Delete("/{neighborhoodID}", deleteNeighborhoodHandler(svc))
	})
}

// Response es un barrio tal como lo devuelve la API.
type Response struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToResponse(n Neighborhood) Response {
	return Response{ID: n.ID, Name: n.Name}
}

// @Summary Listar barrios
// @Description Devuelve todos los barrios ordenados por id. Sirve como opciones para formularios de owners y walkers.
// @Tags neighborhoods
// @Produce json
// @Success 200 {array} Response
// @Failure 503 {object} web.ErrorBody
// @Router /neighborhoods [get]
func listNeighborhoodsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, n := range items {
			out = append(out, ToResponse(n))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func createNeighborhoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := web.Decode(r, &in); err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		n, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, ToResponse(n))
	}
}

func getNeighborhoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "neighborhoodID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		n, err := svc.Get(r.Context(), id)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponse(n))
	}
}

func updateNeighborhoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "neighborhoodID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		var in Input
		if err := web.Decode(r, &in); err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		n, err := svc.Update(r.Context(), id, in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponse(n))
	}
}

func deleteNeighborhoodHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "neighborhoodID")
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
