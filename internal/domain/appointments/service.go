package appointments

import (
	"context"
	"sort"
	"strings"

	"pet-care-manager/internal/platform/validation"
)

type Service struct {
	repo     Repository
	validate *validation.Validator
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validation.New(),
	}
}

type CreateInput struct {
	PetID string `json:"petId" validate:"required"`
	Title string `json:"title" validate:"required,max=200"`
	Date  string `json:"date" validate:"required,isodatetime"`
	Type  Type   `json:"type" validate:"omitempty,oneof=vet vaccine grooming other"`
	Notes string `json:"notes" validate:"max=2000"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	in.PetID = strings.TrimSpace(in.PetID)
	in.Title = strings.TrimSpace(in.Title)
	in.Date = strings.TrimSpace(in.Date)
	in.Type = Type(strings.TrimSpace(string(in.Type)))
	in.Notes = strings.TrimSpace(in.Notes)

	if err := s.validate.Struct(in); err != nil {
		return Appointment{}, err
	}

	typ := in.Type
	if typ == "" {
		typ = DefaultType
	}

	return s.repo.Create(ctx, Appointment{
		PetID: in.PetID,
		Title: in.Title,
		Date:  in.Date,
		Type:  typ,
		Notes: in.Notes,
	})
}

// List devuelve las citas ordenadas por fecha ascendente.
// petID vacío => todas.
func (s *Service) List(ctx context.Context, petID string) ([]Appointment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Appointment, 0, len(items))
	for _, a := range items {
		if petID != "" && a.PetID != petID {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool { return before(out[i].Date, out[j].Date) })
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

// before compara por instante; si alguna fecha no se puede parsear, compara el texto.
func before(a, b string) bool {
	ta, errA := validation.ParseISODateTime(a)
	tb, errB := validation.ParseISODateTime(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ta.Before(tb)
}
