package pets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-care-manager/internal/advisory"
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

// CreateInput: Age es puntero para distinguir "no enviado" de 0.
type CreateInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Type  string `json:"type" validate:"max=50"`
	Age   *int   `json:"age" validate:"required,gte=0"`
	Image string `json:"image"`
}

// UpdateInput reemplaza el perfil completo (PUT).
// Image vacío conserva la imagen actual.
type UpdateInput = CreateInput

func (in CreateInput) normalized() CreateInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	in.Image = strings.TrimSpace(in.Image)
	return in
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	in = in.normalized()
	if err := s.validate.Struct(in); err != nil {
		return Pet{}, err
	}

	p := Pet{
		Name:  in.Name,
		Type:  in.Type,
		Age:   *in.Age,
		Image: in.Image,
	}
	if p.Type == "" {
		p.Type = DefaultType
	}
	if p.Image == "" {
		p.Image = s.placeholderImage()
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	in = in.normalized()
	if err := s.validate.Struct(in); err != nil {
		return Pet{}, err
	}

	return s.repo.Update(ctx, id, func(current Pet) (Pet, error) {
		current.Name = in.Name
		current.Age = *in.Age
		current.Type = in.Type
		if current.Type == "" {
			current.Type = DefaultType
		}
		if in.Image != "" {
			current.Image = in.Image
		}
		return current, nil
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Delete no borra citas, planes ni fotos de la mascota.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

// Summary arma el contexto que se le pasa al asistente.
func (s *Service) Summary(ctx context.Context) (string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}
	pcs := make([]advisory.PetContext, 0, len(items))
	for _, p := range items {
		pcs = append(pcs, advisory.PetContext{Name: p.Name, Type: p.Type, Age: p.Age})
	}
	return advisory.SummarizePets(pcs), nil
}

func (s *Service) placeholderImage() string {
	return fmt.Sprintf("https://picsum.photos/200?random=%d", s.now().UnixMilli())
}
