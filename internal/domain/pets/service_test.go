package pets

import (
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Pet
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.items = append(r.items, p)
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	for i := range r.items {
		if r.items[i].ID == p.ID && r.items[i].OwnerTaxID == p.OwnerTaxID {
			r.items[i] = p
			return nil
		}
	}
	return errors.NotFoundf("pet %q", p.ID)
}

func (r *testRepo) Delete(ctx context.Context, ownerTaxID, id string) error {
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].OwnerTaxID == ownerTaxID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("pet %q", id)
}

func (r *testRepo) DeleteByOwner(ctx context.Context, ownerTaxID string) (int, error) {
	kept := r.items[:0]
	n := 0
	for _, p := range r.items {
		if p.OwnerTaxID == ownerTaxID {
			n++
			continue
		}
		kept = append(kept, p)
	}
	r.items = kept
	return n, nil
}

func (r *testRepo) GetByID(ctx context.Context, ownerTaxID, id string) (Pet, error) {
	for _, p := range r.items {
		if p.ID == id && p.OwnerTaxID == ownerTaxID {
			return p, nil
		}
	}
	return Pet{}, errors.NotFoundf("pet %q", id)
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerTaxID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.items {
		if p.OwnerTaxID == ownerTaxID {
			out = append(out, p)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

const owner = "123.456.789-01"

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Create_DerivesSize(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), owner, CreateInput{
		Name:      "  Rex ",
		Species:   "Dog",
		Weight:    12,
		BirthDate: date(2020, 1, 1),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, SpeciesDog, p.Species)
	assert.Equal(t, SizeMedium, p.Size)
	assert.Equal(t, owner, p.OwnerTaxID)
	assert.Equal(t, fixedNow, p.CreatedAt)
}

func TestService_Create_KeepsInsertionOrderAndDuplicateNames(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, w := range []float64{3, 30, 3} {
		_, err := svc.Create(ctx, owner, CreateInput{Name: "Mia", Species: "gato", Weight: w, BirthDate: date(2019, 5, 5)})
		require.NoError(t, err)
	}

	items, err := svc.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, SizeSmall, items[0].Size)
	assert.Equal(t, SizeLarge, items[1].Size)
	assert.Equal(t, SpeciesCat, items[2].Species)
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	svc, repo := newTestService()

	cases := map[string]CreateInput{
		"blank name":    {Name: "  ", Species: "dog", Weight: 5, BirthDate: date(2020, 1, 1)},
		"bad species":   {Name: "Tweety", Species: "bird", Weight: 5, BirthDate: date(2020, 1, 1)},
		"zero weight":   {Name: "Rex", Species: "dog", Weight: 0, BirthDate: date(2020, 1, 1)},
		"negative":      {Name: "Rex", Species: "dog", Weight: -2, BirthDate: date(2020, 1, 1)},
		"future birth":  {Name: "Rex", Species: "dog", Weight: 5, BirthDate: date(2025, 3, 11)},
		"missing birth": {Name: "Rex", Species: "dog", Weight: 5},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), owner, in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.NotValid), "expected NotValid, got %v", err)
		})
	}
	assert.Empty(t, repo.items, "failed creates must not store anything")
}

func TestService_Create_BirthDateTodayIsAllowed(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), owner, CreateInput{
		Name: "Newborn", Species: "cat", Weight: 0.3, BirthDate: date(2025, 3, 10),
	})
	require.NoError(t, err)
}

func TestService_Update_RederivesSize(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, CreateInput{Name: "Rex", Species: "dog", Weight: 8, BirthDate: date(2020, 1, 1)})
	require.NoError(t, err)
	require.Equal(t, SizeSmall, p.Size)

	w := 26.5
	updated, err := svc.Update(ctx, owner, p.ID, UpdateInput{Weight: &w})
	require.NoError(t, err)
	assert.Equal(t, SizeLarge, updated.Size)

	got, err := svc.GetByID(ctx, owner, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 26.5, got.Weight)
	assert.Equal(t, SizeLarge, got.Size)
}

func TestService_Update_IsAllOrNothing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, CreateInput{Name: "Rex", Species: "dog", Weight: 8, BirthDate: date(2020, 1, 1)})
	require.NoError(t, err)

	w := 30.0
	future := date(2030, 1, 1)
	_, err = svc.Update(ctx, owner, p.ID, UpdateInput{Weight: &w, BirthDate: &future})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))

	got, err := svc.GetByID(ctx, owner, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got.Weight)
	assert.Equal(t, SizeSmall, got.Size)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), owner, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestParseSpecies_Aliases(t *testing.T) {
	s, err := ParseSpecies("CACHORRO")
	require.NoError(t, err)
	assert.Equal(t, SpeciesDog, s)

	s, err = ParseSpecies(" Gato ")
	require.NoError(t, err)
	assert.Equal(t, SpeciesCat, s)
}
