package walks

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"doggo/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/walks", func(wr chi.Router) {
		wr.Get("/", listWalksHandler(svc))
		wr.Post("/", createWalkHandler(svc))
		wr.Get("/{walkID}", getWalkHandler(svc))
	})

	// Historial de un walker
	r.Get("/walkers/{walkerID}/walks", listWalkerWalksHandler(svc))
}

type Response struct {
	ID              int64     `json:"id"`
	Date            time.Time `json:"date"`
	DurationSeconds int64     `json:"duration_seconds"`
	Duration        string    `json:"duration"`
	WalkerID        int64     `json:"walker_id"`
	DogID           int64     `json:"dog_id"`
}

func ToResponse(w Walk) Response {
	return Response{
		ID:              w.ID,
		Date:            w.Date,
		DurationSeconds: int64(w.Duration / time.Second),
		Duration:        FormatDuration(w.Duration),
		WalkerID:        w.WalkerID,
		DogID:           w.DogID,
	}
}

func ToResponses(items []Walk) []Response {
	out := make([]Response, 0, len(items))
	for _, wk := range items {
		out = append(out, ToResponse(wk))
	}
	return out
}

// @Summary Listar paseos
// @Tags walks
// @Produce json
// @Param dog_id query int false "Solo paseos de este perro"
// @Success 200 {array} Response
// @Router /walks [get]
func listWalksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogID, byDog, err := web.QueryID(r, "dog_id")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		var items []Walk
		if byDog {
			items, err = svc.ListByDog(r.Context(), dogID)
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

// @Summary Registrar paseo
// @Description date en RFC3339; duration_seconds > 0.
// @Tags walks
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del paseo"
// @Success 201 {object} Response
// @Failure 400 {object} web.ErrorBody "campo requerido, walker o perro inexistente"
// @Router /walks [post]
func createWalkHandler(svc *Service) http.HandlerFunc {
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

func getWalkHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "walkID")
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

// @Summary Historial de paseos de un walker
// @Description Ordenado por fecha descendente.
// @Tags walks
// @Produce json
// @Param walkerID path int true "ID del walker"
// @Success 200 {array} Response
// @Router /walkers/{walkerID}/walks [get]
func listWalkerWalksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walkerID, err := web.IDParam(r, "walkerID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		items, err := svc.ListByWalker(r.Context(), walkerID)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}
