package clients

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-grooming-shop/internal/domain/pets"
	"pet-grooming-shop/internal/platform/httpx"
	"pet-grooming-shop/internal/platform/logger"
)

// RegisterRoutes monta clientes y sus mascotas. loc es la zona en la que se leen las fechas de nacimiento.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, loc *time.Location) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Post("/", registerClientHandler(svc, log))
		cr.Get("/", listClientsHandler(svc, log))
		cr.Get("/{taxID}", getClientHandler(svc, log))
		cr.Delete("/{taxID}", removeClientHandler(svc, log))

		cr.Post("/{taxID}/pets", addPetHandler(svc, log, loc))
		cr.Patch("/{taxID}/pets/{petID}", updatePetHandler(svc, log, loc))
		cr.Delete("/{taxID}/pets/{petID}", removePetHandler(svc, log))
	})
}

// registerClientRequest: si el cliente ya existe solo se usa tax_id.
type registerClientRequest struct {
	TaxID   string `json:"tax_id" validate:"required" example:"123.456.789-01"`
	Name    string `json:"name" example:"Ana"`
	Phone   string `json:"phone" example:"11 99999-0000"`
	Address string `json:"address" example:"Rua das Flores, 10"`
}

type clientResponse struct {
	TaxID     string        `json:"tax_id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Address   string        `json:"address"`
	Pets      []petResponse `json:"pets"`
	CreatedAt time.Time     `json:"created_at"`
}

type createPetRequest struct {
	Name      string  `json:"name" validate:"required" example:"Rex"`
	Species   string  `json:"species" validate:"required" example:"dog"`
	Weight    float64 `json:"weight" validate:"gt=0" example:"12"`
	BirthDate string  `json:"birth_date" validate:"required" example:"2020-01-01"` // YYYY-MM-DD
}

// updatePetRequest: nil = no tocar.
type updatePetRequest struct {
	Name      *string  `json:"name"`
	Species   *string  `json:"species"`
	Weight    *float64 `json:"weight" validate:"omitempty,gt=0"`
	BirthDate *string  `json:"birth_date"` // YYYY-MM-DD
}

type petResponse struct {
	ID         string        `json:"id"`
	OwnerTaxID string        `json:"owner_tax_id"`
	Name       string        `json:"name"`
	Species    pets.Species  `json:"species"`
	Weight     float64       `json:"weight"`
	Size       pets.SizeTier `json:"size"`
	BirthDate  string        `json:"birth_date"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type removePetResponse struct {
	RemainingPets int `json:"remaining_pets"`
}

// registerClientHandler godoc
// @Summary Registrar o recuperar cliente
// @Description Normaliza el CPF. Si ya existe devuelve el cliente sin cambios (200); si no, lo crea (201) y exige nombre, teléfono y dirección.
// @Tags clients
// @Accept json
// @Produce json
// @Param payload body registerClientRequest true "Datos del cliente"
// @Success 200 {object} clientResponse "ya existía"
// @Success 201 {object} clientResponse "creado"
// @Failure 400 {object} httpx.ErrorResponse "CPF inválido o campos vacíos"
// @Failure 422 {object} httpx.ErrorResponse "validación"
// @Router /clients [post]
func registerClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerClientRequest
		if !httpx.Bind(w, r, &req) {
			return
		}

		c, created, err := svc.RegisterOrFetch(r.Context(), RegisterInput{
			TaxID:   req.TaxID,
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		httpx.JSON(w, r, status, toClientResponse(c))
	}
}

func listClientsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}

func getClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "taxID"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toClientResponse(c))
	}
}

func removeClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemoveClient(r.Context(), chi.URLParam(r, "taxID")); err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// addPetHandler godoc
// @Summary Agregar mascota a un cliente
// @Description El porte (small/medium/large) se deriva del peso. Especies: dog o cat.
// @Tags clients
// @Accept json
// @Produce json
// @Param taxID path string true "CPF del cliente"
// @Param payload body createPetRequest true "Datos de la mascota; birth_date YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse "reglas de negocio"
// @Failure 404 {object} httpx.ErrorResponse "cliente no encontrado"
// @Router /clients/{taxID}/pets [post]
func addPetHandler(svc *Service, log logger.Logger, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if !httpx.Bind(w, r, &req) {
			return
		}

		bd, err := parseDate(req.BirthDate, loc)
		if err != nil {
			httpx.Fail(w, r, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
			return
		}

		p, err := svc.AddPet(r.Context(), chi.URLParam(r, "taxID"), pets.CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			Weight:    req.Weight,
			BirthDate: bd,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.JSON(w, r, http.StatusCreated, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service, log logger.Logger, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if !httpx.Bind(w, r, &req) {
			return
		}

		in := pets.UpdateInput{
			Name:    req.Name,
			Species: req.Species,
			Weight:  req.Weight,
		}
		if req.BirthDate != nil {
			bd, err := parseDate(*req.BirthDate, loc)
			if err != nil {
				httpx.Fail(w, r, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
				return
			}
			in.BirthDate = &bd
		}

		p, err := svc.UpdatePet(r.Context(), chi.URLParam(r, "taxID"), chi.URLParam(r, "petID"), in)
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toPetResponse(p))
	}
}

// removePetHandler devuelve cuántas mascotas quedan; con 0 el cliente sigue existiendo.
func removePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remaining, err := svc.RemovePet(r.Context(), chi.URLParam(r, "taxID"), chi.URLParam(r, "petID"))
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, removePetResponse{RemainingPets: remaining})
	}
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
}

func toClientResponse(c Client) clientResponse {
	out := clientResponse{
		TaxID:     c.TaxID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Pets:      make([]petResponse, 0, len(c.Pets)),
		CreatedAt: c.CreatedAt,
	}
	for _, p := range c.Pets {
		out.Pets = append(out.Pets, toPetResponse(p))
	}
	return out
}

func toPetResponse(p pets.Pet) petResponse {
	return petResponse{
		ID:         p.ID,
		OwnerTaxID: p.OwnerTaxID,
		Name:       p.Name,
		Species:    p.Species,
		Weight:     p.Weight,
		Size:       p.Size,
		BirthDate:  p.BirthDate.Format(time.DateOnly),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
