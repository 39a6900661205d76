package walkers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"doggo/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/walkers", func(wr chi.Router) {
		wr.Get("/", listWalkersHandler(svc))
		wr.Post("/", createWalkerHandler(svc))
		wr.Get("/{walkerID}", getWalkerHandler(svc))
		wr.Put("/{walkerID}", updateWalkerHandler(svc))
		wr.Delete("/{walkerID}", deleteWalkerHandler(svc))
	})
}

type Response struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	ImageURL       *string `json:"image_url"`
	NeighborhoodID int64   `json:"neighborhood_id"`
}

func ToResponse(w Walker) Response {
	return Response{
		ID:             w.ID,
		Name:           w.Name,
		ImageURL:       w.ImageURL,
		NeighborhoodID: w.NeighborhoodID,
	}
}

func ToResponses(items []Walker) []Response {
	out := make([]Response, 0, len(items))
	for _, wk := range items {
		out = append(out, ToResponse(wk))
	}
	return out
}

// @Summary Listar walkers
// @Tags walkers
// @Produce json
// @Param neighborhood_id query int false "Solo walkers de este barrio"
// @Success 200 {array} Response
// @Failure 400 {object} web.ErrorBody
// @Router /walkers [get]
func listWalkersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hoodID, byHood, err := web.QueryID(r, "neighborhood_id")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		var items []Walker
		if byHood {
			items, err = svc.ListByNeighborhood(r.Context(), hoodID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}

func createWalkerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := web.Decode(r, &in); err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		wk, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, ToResponse(wk))
	}
}

func getWalkerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "walkerID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		wk, err := svc.Get(r.Context(), id)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponse(wk))
	}
}

func updateWalkerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "walkerID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		var in Input
		if err := web.Decode(r, &in); err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		wk, err := svc.Update(r.Context(), id, in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponse(wk))
	}
}

// @Summary Borrar walker
// @Description Rechaza el borrado si el walker tiene paseos registrados.
// @Tags walkers
// @Param walkerID path int true "ID del walker"
// @Success 204
// @Failure 400 {object} web.ErrorBody "tiene paseos asociados"
// @Failure 404 {object} web.ErrorBody
// @Router /walkers/{walkerID} [delete]
func deleteWalkerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "walkerID")
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
