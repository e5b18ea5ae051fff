package pets

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"pet-care-manager/internal/adapters/storage/memory"
	"pet-care-manager/internal/platform/validation"
	"pet-care-manager/internal/recordstore"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Pet
	calls int
	next  int
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	r.calls++
	return append([]Pet(nil), r.items...), nil
}

func (r *testRepo) Get(ctx context.Context, id string) (Pet, error) {
	r.calls++
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, recordstore.ErrNotFound
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.calls++
	r.next++
	p.ID = "pet-" + string(rune('0'+r.next))
	r.items = append(r.items, p)
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, id string, fn func(Pet) (Pet, error)) (Pet, error) {
	r.calls++
	for i := range r.items {
		if r.items[i].ID == id {
			next, err := fn(r.items[i])
			if err != nil {
				return Pet{}, err
			}
			next.ID = id
			r.items[i] = next
			return next, nil
		}
	}
	return Pet{}, recordstore.ErrNotFound
}

func (r *testRepo) Remove(ctx context.Context, id string) error {
	r.calls++
	out := r.items[:0]
	for _, p := range r.items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.items = out
	return nil
}

func intPtr(v int) *int { return &v }

func newTestService(repo *testRepo) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s
}

func TestCreate_AppliesDefaults(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), CreateInput{Name: "  Bello ", Age: intPtr(3)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if p.Name != "Bello" || p.Type != DefaultType || p.Age != 3 {
		t.Fatalf("unexpected pet: %+v", p)
	}
	if p.Image != "https://picsum.photos/200?random=1700000000000" {
		t.Fatalf("unexpected placeholder image: %q", p.Image)
	}
}

func TestCreate_KeepsGivenTypeAndImage(t *testing.T) {
	svc := newTestService(&testRepo{})

	p, err := svc.Create(context.Background(), CreateInput{
		Name:  "Minka",
		Type:  "Katze",
		Age:   intPtr(0),
		Image: "data:image/png;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Type != "Katze" || p.Age != 0 || !strings.HasPrefix(p.Image, "data:image/png") {
		t.Fatalf("unexpected pet: %+v", p)
	}
}

func TestCreate_ValidationFails_NoRepoCalls(t *testing.T) {
	cases := map[string]struct {
		in    CreateInput
		field string
	}{
		"missing name": {in: CreateInput{Name: "   ", Age: intPtr(2)}, field: "name"},
		"missing age":  {in: CreateInput{Name: "Bello"}, field: "age"},
		"negative age": {in: CreateInput{Name: "Bello", Age: intPtr(-1)}, field: "age"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &testRepo{}
			svc := newTestService(repo)

			_, err := svc.Create(context.Background(), tc.in)
			if !errors.Is(err, validation.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var valErr *validation.Error
			if !errors.As(err, &valErr) {
				t.Fatalf("expected *validation.Error, got %T", err)
			}
			if _, ok := valErr.Fields[tc.field]; !ok {
				t.Fatalf("expected field %q in %v", tc.field, valErr.Fields)
			}
			if repo.calls != 0 {
				t.Fatalf("expected no repo calls, got %d", repo.calls)
			}
		})
	}
}

func TestUpdate_ReplacesInPlaceAndKeepsImage(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	a, _ := svc.Create(ctx, CreateInput{Name: "Bello", Age: intPtr(3), Image: "img-a"})
	b, _ := svc.Create(ctx, CreateInput{Name: "Minka", Type: "Katze", Age: intPtr(5)})

	updated, err := svc.Update(ctx, a.ID, UpdateInput{Name: "Bello", Type: "", Age: intPtr(4)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Age != 4 || updated.Image != "img-a" || updated.Type != DefaultType {
		t.Fatalf("unexpected updated pet: %+v", updated)
	}

	all, _ := svc.List(ctx)
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != b.ID || all[0].Age != 4 {
		t.Fatalf("expected in-place update with order kept, got %+v", all)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(&testRepo{})

	_, err := svc.Update(context.Background(), "nope", UpdateInput{Name: "X", Age: intPtr(1)})
	if !errors.Is(err, recordstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// removeFirstRepo borra la mascota justo antes de que Update tome el lock,
// como un DELETE que llega entre la lectura del handler y la escritura.
type removeFirstRepo struct {
	*recordstore.Collection[Pet]
}

func (r removeFirstRepo) Update(ctx context.Context, id string, fn func(Pet) (Pet, error)) (Pet, error) {
	if err := r.Collection.Remove(ctx, id); err != nil {
		return Pet{}, err
	}
	return r.Collection.Update(ctx, id, fn)
}

func TestUpdate_DeletedMeanwhile_NotFoundAndNotResurrected(t *testing.T) {
	ctx := context.Background()
	col := recordstore.NewCollection[Pet](recordstore.New(memory.NewBackend()), StorageKey)
	svc := NewService(removeFirstRepo{col})

	p, err := svc.Create(ctx, CreateInput{Name: "Bello", Age: intPtr(3)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(ctx, p.ID, UpdateInput{Name: "Bello", Age: intPtr(4)})
	if !errors.Is(err, recordstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := col.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("deleted pet came back: %+v", all)
	}
}

func TestUpdate_ConcurrentWithDelete_NeverResurrects(t *testing.T) {
	ctx := context.Background()
	col := recordstore.NewCollection[Pet](recordstore.New(memory.NewBackend()), StorageKey)
	svc := NewService(col)

	for i := 0; i < 50; i++ {
		p, err := svc.Create(ctx, CreateInput{Name: "Bello", Age: intPtr(3)})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		var wg sync.WaitGroup
		var updateErr, deleteErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, updateErr = svc.Update(ctx, p.ID, UpdateInput{Name: "Bello", Age: intPtr(4)})
		}()
		go func() {
			defer wg.Done()
			deleteErr = svc.Delete(ctx, p.ID)
		}()
		wg.Wait()

		if deleteErr != nil {
			t.Fatalf("Delete: %v", deleteErr)
		}
		if updateErr != nil && !errors.Is(updateErr, recordstore.ErrNotFound) {
			t.Fatalf("Update: %v", updateErr)
		}
		if _, err := svc.GetByID(ctx, p.ID); !errors.Is(err, recordstore.ErrNotFound) {
			t.Fatalf("iteration %d: pet still stored after delete (err=%v)", i, err)
		}
	}
}

func TestCreate_AgeHasNoUpperBound(t *testing.T) {
	svc := newTestService(&testRepo{})

	p, err := svc.Create(context.Background(), CreateInput{Name: "Schildkröte", Type: "Sonstiges", Age: intPtr(120)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Age != 120 {
		t.Fatalf("unexpected age: %d", p.Age)
	}
}

func TestDelete_AndSummary(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	bello, _ := svc.Create(ctx, CreateInput{Name: "Bello", Age: intPtr(3)})
	_, _ = svc.Create(ctx, CreateInput{Name: "Minka", Type: "Katze", Age: intPtr(5)})

	got, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got != "Bello (Hund, 3 Jahre), Minka (Katze, 5 Jahre)" {
		t.Fatalf("unexpected summary: %q", got)
	}

	if err := svc.Delete(ctx, bello.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, _ = svc.Summary(ctx)
	if got != "Minka (Katze, 5 Jahre)" {
		t.Fatalf("unexpected summary after delete: %q", got)
	}
}
