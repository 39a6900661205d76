package owners

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"doggo/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type Response struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	NeighborhoodID int64  `json:"neighborhood_id"`
}

func ToResponse(o Owner) Response {
	return Response{
		ID:             o.ID,
		Name:           o.Name,
		Email:          o.Email,
		Address:        o.Address,
		Phone:          o.Phone,
		NeighborhoodID: o.NeighborhoodID,
	}
}

// @Summary Listar owners
// @Description Lista todos los owners. Con `email` devuelve como máximo uno; con `neighborhood_id` filtra por barrio.
// @Tags owners
// @Produce json
// @Param email query string false "Email exacto"
// @Param neighborhood_id query int false "ID del barrio"
// @Success 200 {array} Response
// @Failure 400 {object} web.ErrorBody
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if email := strings.TrimSpace(r.URL.Query().Get("email")); email != "" {
			o, err := svc.GetByEmail(r.Context(), email)
			if err != nil {
				web.WriteError(w, r, err)
				return
			}
			web.WriteJSON(w, http.StatusOK, []Response{ToResponse(o)})
			return
		}

		hoodID, byHood, err := web.QueryID(r, "neighborhood_id")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		var items []Owner
		if byHood {
			items, err = svc.ListByNeighborhood(r.Context(), hoodID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, o := range items {
			out = append(out, ToResponse(o))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Crear owner
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del owner"
// @Success 201 {object} Response
// @Failure 400 {object} web.ErrorBody "campo requerido, barrio inexistente o email duplicado"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Input
		if err := web.Decode(r, &in); err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		o, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusCreated, ToResponse(o))
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "ownerID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		o, err := svc.Get(r.Context(), id)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponse(o))
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "ownerID")
		if err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		var in Input
		if err := web.Decode(r, &in); err != nil {
			web.BadRequest(w, err.Error())
			return
		}

		o, err := svc.Update(r.Context(), id, in)
		if err != nil {
			web.WriteError(w, r, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, ToResponse(o))
	}
}

// @Summary Borrar owner
// @Description Rechaza el borrado si el owner todavía tiene perros.
// @Tags owners
// @Param ownerID path int true "ID del owner"
// @Success 204
// @Failure 400 {object} web.ErrorBody "tiene perros asociados"
// @Failure 404 {object} web.ErrorBody
// @Router /owners/{ownerID} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := web.IDParam(r, "ownerID")
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
