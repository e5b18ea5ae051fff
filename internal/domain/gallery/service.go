package gallery

import (
	"context"
	"strings"
	"time"

	"pet-care-manager/internal/platform/validation"
)

type Service struct {
	repo     Repository
	validate *validation.Validator
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validation.New(),
		now:      time.Now,
	}
}

type CreateInput struct {
	PetID string `json:"petId" validate:"required"`
	URL   string `json:"url" validate:"required"`
	Date  string `json:"date" validate:"omitempty,isodatetime"`
	Note  string `json:"note" validate:"max=500"`
}

// Create agrega la foto al principio de la galería.
// Date vacío => momento actual en UTC.
func (s *Service) Create(ctx context.Context, in CreateInput) (Item, error) {
	in.PetID = strings.TrimSpace(in.PetID)
	in.URL = strings.TrimSpace(in.URL)
	in.Date = strings.TrimSpace(in.Date)
	in.Note = strings.TrimSpace(in.Note)

	if err := s.validate.Struct(in); err != nil {
		return Item{}, err
	}

	date := in.Date
	if date == "" {
		date = s.now().UTC().Format(time.RFC3339)
	}

	return s.repo.Prepend(ctx, Item{
		PetID: in.PetID,
		URL:   in.URL,
		Date:  date,
		Note:  in.Note,
	})
}

// List respeta el orden guardado (más nueva primero). petID vacío => todas.
func (s *Service) List(ctx context.Context, petID string) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if petID == "" {
		return items, nil
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.PetID == petID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
