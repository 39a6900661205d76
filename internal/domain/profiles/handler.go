package profiles

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
	"doggo/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/owners/{ownerID}/profile", ownerProfileHandler(svc))
	r.Get("/walkers/{walkerID}/profile", walkerProfileHandler(svc))
}

type OwnerProfileResponse struct {
	Owner        owners.Response         `json:"owner"`
	Neighborhood *neighborhoods.Response `json:"neighborhood"`
	Dogs         []dogs.Response         `json:"dogs"`
	Walkers      []walkers.Response      `json:"walkers"`
}

type WalkerProfileResponse struct {
	Walker             walkers.Response        `json:"walker"`
	Neighborhood       *neighborhoods.Response `json:"neighborhood"`
	Walks              []walks.Response        `json:"walks"`
	TotalWalkedSeconds int64                   `json:"total_walked_seconds"`
	TotalWalked        string                  `json:"total_walked"`
}

func hoodResponse(n *neighborhoods.Neighborhood) *neighborhoods.Response {
	if n == nil {
		return nil
	}
	resp := neighborhoods.ToResponse(*n)
	return &resp
}

// @Summary Perfil de owner
// @Description Owner con sus perros y los walkers disponibles en su barrio.
// @Tags profiles
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {object} OwnerProfileResponse
// @Failure 404 {object} web.ErrorBody
// @Router /owners/{ownerID}/profile [get]
func ownerProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "ownerID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		p, err := svc.OwnerProfile(r.Context(), id)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, OwnerProfileResponse{
			Owner:        owners.ToResponse(p.Owner),
			Neighborhood: hoodResponse(p.Neighborhood),
			Dogs:         dogs.ToResponses(p.Dogs),
			Walkers:      walkers.ToResponses(p.Walkers),
		})
	}
}

// @Summary Perfil de walker
// @Description Walker con su historial de paseos (más reciente primero) y el tiempo total caminado.
// @Tags profiles
// @Produce json
// @Param walkerID path int true "ID del walker"
// @Success 200 {object} WalkerProfileResponse
// @Failure 404 {object} web.ErrorBody
// @Router /walkers/{walkerID}/profile [get]
func walkerProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "walkerID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		p, err := svc.WalkerProfile(r.Context(), id)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, WalkerProfileResponse{
			Walker:             walkers.ToResponse(p.Walker),
			Neighborhood:       hoodResponse(p.Neighborhood),
			Walks:              walks.ToResponses(p.Walks),
			TotalWalkedSeconds: int64(p.TotalWalked.Seconds()),
			TotalWalked:        p.TotalWalkedDisplay,
		})
	}
}
