package feeding

import (
	"context"
	"sort"
	"strings"
	"time"

	"pet-care-manager/internal/platform/validation"
)

const timeLayout = "15:04"

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
	PetID    string `json:"petId" validate:"required"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Amount   string `json:"amount" validate:"required,max=100"`
	FoodType string `json:"foodType" validate:"required,max=100"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Plan, error) {
	in.PetID = strings.TrimSpace(in.PetID)
	in.Time = strings.TrimSpace(in.Time)
	in.Amount = strings.TrimSpace(in.Amount)
	in.FoodType = strings.TrimSpace(in.FoodType)

	if err := s.validate.Struct(in); err != nil {
		return Plan{}, err
	}

	// "7:30" => "07:30" para que el orden por texto coincida con el horario
	t, _ := time.Parse(timeLayout, in.Time)

	return s.repo.Create(ctx, Plan{
		PetID:    in.PetID,
		Time:     t.Format(timeLayout),
		Amount:   in.Amount,
		FoodType: in.FoodType,
	})
}

// List devuelve los planes ordenados por hora. petID vacío => todos.
func (s *Service) List(ctx context.Context, petID string) ([]Plan, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Plan, 0, len(items))
	for _, p := range items {
		if petID != "" && p.PetID != petID {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
