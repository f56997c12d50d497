package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Rutas estáticas antes que /{petID} (chi prioriza igual, pero así se lee mejor)
		pr.Get("/kinds", listKindsHandler(svc))

		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// listKindsHandler godoc
// @Summary  List pet kinds
// @Tags     pets
// @Produce  json
// @Success  200 {array} Kind
// @Router   /pets/kinds [get]
func listKindsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kinds, err := svc.ListKinds(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, kinds)
	}
}

// listPetsHandler godoc
// @Summary  List pets
// @Tags     pets
// @Produce  json
// @Success  200 {array} Pet
// @Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if items == nil {
			items = []Pet{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getPetHandler godoc
// @Summary  Get a pet
// @Tags     pets
// @Produce  json
// @Param    petID path int true "Pet id"
// @Success  200 {object} Pet
// @Failure  404 {object} errorResponse
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// createPetHandler godoc
// @Summary  Create a pet
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    pet body Pet true "Pet without id"
// @Success  201 {object} Pet
// @Failure  400 {object} errorResponse
// @Router   /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Pet
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

// updatePetHandler godoc
// @Summary  Update a pet
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    petID path int true "Pet id"
// @Param    pet body Pet true "Pet"
// @Success  200 {object} Pet
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		var in Pet
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		// El id de la URL manda sobre el del body.
		in.PetID = id

		p, err := svc.Update(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary  Delete a pet
// @Tags     pets
// @Param    petID path int true "Pet id"
// @Success  204
// @Failure  404 {object} errorResponse
// @Router   /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func petIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "petID"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "petId must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, string(f))
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ErrInvalidInput.Error(), Fields: fields})
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "pet not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
