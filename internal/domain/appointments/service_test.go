package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pet-care-manager/internal/platform/validation"
)

type testRepo struct {
	items []Appointment
	calls int
}

func (r *testRepo) List(ctx context.Context) ([]Appointment, error) {
	r.calls++
	return append([]Appointment(nil), r.items...), nil
}

func (r *testRepo) Create(ctx context.Context, a Appointment) (Appointment, error) {
	r.calls++
	a.ID = fmt.Sprintf("appt-%d", len(r.items)+1)
	r.items = append(r.items, a)
	return a, nil
}

func (r *testRepo) Remove(ctx context.Context, id string) error {
	r.calls++
	out := r.items[:0]
	for _, a := range r.items {
		if a.ID != id {
			out = append(out, a)
		}
	}
	r.items = out
	return nil
}

func TestCreate_EmptyTitle_RejectedWithoutRepoCalls(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1",
		Title: "   ",
		Date:  "2025-03-01T10:00",
	})

	var valErr *validation.Error
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if _, ok := valErr.Fields["title"]; !ok {
		t.Fatalf("expected title error, got %v", valErr.Fields)
	}
	if repo.calls != 0 {
		t.Fatalf("expected zero repo calls, got %d", repo.calls)
	}
}

func TestCreate_InvalidFields(t *testing.T) {
	cases := map[string]struct {
		in    CreateInput
		field string
	}{
		"missing pet":  {in: CreateInput{Title: "Impfung", Date: "2025-03-01"}, field: "petId"},
		"missing date": {in: CreateInput{PetID: "p", Title: "Impfung"}, field: "date"},
		"bad date":     {in: CreateInput{PetID: "p", Title: "Impfung", Date: "morgen"}, field: "date"},
		"bad type":     {in: CreateInput{PetID: "p", Title: "Impfung", Date: "2025-03-01", Type: "party"}, field: "type"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &testRepo{}
			_, err := NewService(repo).Create(context.Background(), tc.in)

			var valErr *validation.Error
			if !errors.As(err, &valErr) {
				t.Fatalf("expected *validation.Error, got %v", err)
			}
			if _, ok := valErr.Fields[tc.field]; !ok {
				t.Fatalf("expected %q error, got %v", tc.field, valErr.Fields)
			}
			if repo.calls != 0 {
				t.Fatalf("expected zero repo calls, got %d", repo.calls)
			}
		})
	}
}

func TestCreate_DefaultsTypeToVet(t *testing.T) {
	svc := NewService(&testRepo{})

	a, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1",
		Title: "Jahrescheck",
		Date:  "2025-03-01T10:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == "" || a.Type != TypeVet || a.Notes != "" {
		t.Fatalf("unexpected appointment: %+v", a)
	}
}

func TestList_SortedByDateAndFiltered(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	mustCreate := func(petID, title, date string) {
		t.Helper()
		if _, err := svc.Create(ctx, CreateInput{PetID: petID, Title: title, Date: date, Type: TypeVaccine}); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}
	mustCreate("p1", "C", "2025-05-01T09:00")
	mustCreate("p2", "X", "2025-01-01T09:00")
	mustCreate("p1", "A", "2025-03-01T08:00:00+01:00")
	mustCreate("p1", "B", "2025-03-01T08:30:00Z")

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := ""
	for _, a := range all {
		got += a.Title
	}
	if got != "XABC" {
		t.Fatalf("expected date order XABC, got %s", got)
	}

	p1, _ := svc.List(ctx, "p1")
	if len(p1) != 3 || p1[0].Title != "A" {
		t.Fatalf("unexpected filtered list: %+v", p1)
	}
}

func TestDelete(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	a, _ := svc.Create(ctx, CreateInput{PetID: "p", Title: "T", Date: "2025-03-01"})
	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "missing"); err != nil {
		t.Fatalf("Delete of absent id should not fail: %v", err)
	}
	items, _ := svc.List(ctx, "")
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %+v", items)
	}
}
