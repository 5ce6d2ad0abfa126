package appointments_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "pet-grooming-shop/internal/adapters/storage/memory"
	"pet-grooming-shop/internal/domain/appointments"
	"pet-grooming-shop/internal/domain/clients"
	"pet-grooming-shop/internal/domain/finance"
	"pet-grooming-shop/internal/domain/pets"
	"pet-grooming-shop/internal/domain/schedule"
)

// 2030-01-07 es lunes, 2030-01-06 domingo.
var (
	monday10 = time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)
	sunday10 = time.Date(2030, 1, 6, 10, 0, 0, 0, time.UTC)
	earlyMon = time.Date(2030, 1, 7, 7, 0, 0, 0, time.UTC)
)

type fixture struct {
	clients *clients.Service
	ledger  *finance.Ledger
	svc     *appointments.Service
	rex     pets.Pet
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	cs := clients.NewService(mem.NewClientRepo(), pets.NewService(mem.NewPetRepo()))
	_, _, err := cs.RegisterOrFetch(ctx, clients.RegisterInput{
		TaxID: "12345678901", Name: "Ana", Phone: "555-0101", Address: "Rua A, 10",
	})
	require.NoError(t, err)

	rex, err := cs.AddPet(ctx, "12345678901", pets.CreateInput{
		Name: "Rex", Species: "Dog", Weight: 12, BirthDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, pets.SizeMedium, rex.Size)

	ledger, err := finance.NewLedger("cash")
	require.NoError(t, err)

	return fixture{
		clients: cs,
		ledger:  ledger,
		svc:     appointments.NewService(mem.NewAppointmentRepo(), cs, ledger),
		rex:     rex,
	}
}

func TestBook_WeekdayBathCreditsLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.BookAt(ctx, appointments.BookInput{
		TaxID: "123.456.789-01", PetID: f.rex.ID, At: monday10, Service: "Bath",
	}, earlyMon)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, 80.0, a.Price)
	assert.Equal(t, 60, a.Duration)
	assert.Equal(t, "Bath", a.Service)
	assert.Equal(t, "Rex", a.Pet.Name)
	assert.Equal(t, monday10.Add(time.Hour), a.End())

	rec := f.ledger.Record()
	assert.Equal(t, 80.0, rec.Revenue)
	assert.Equal(t, 1, rec.ServiceCount)

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, a.ID, all[0].ID)
}

func TestBook_SundayLeavesNothingBehind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.BookAt(ctx, appointments.BookInput{
		TaxID: "12345678901", PetID: f.rex.ID, At: sunday10, Service: "Bath",
	}, sunday10.Add(-2*time.Hour))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.True(t, errors.Is(err, schedule.ErrOutsideBusinessHours))

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	rec := f.ledger.Record()
	assert.Zero(t, rec.Revenue)
	assert.Zero(t, rec.ServiceCount)
}

func TestBook_PastSlotFailsEvenInsideHours(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.BookAt(context.Background(), appointments.BookInput{
		TaxID: "12345678901", PetID: f.rex.ID, At: monday10, Service: "Bath",
	}, monday10.Add(time.Minute))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schedule.ErrSlotInPast))
	assert.Zero(t, f.ledger.Record().ServiceCount)
}

func TestBook_UnknownServiceIsRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.BookAt(context.Background(), appointments.BookInput{
		TaxID: "12345678901", PetID: f.rex.ID, At: monday10, Service: "Massage",
	}, earlyMon)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Zero(t, f.ledger.Record().Revenue)
}

func TestBook_ServiceNameIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)

	a, err := f.svc.BookAt(context.Background(), appointments.BookInput{
		TaxID: "12345678901", PetID: f.rex.ID, At: monday10, Service: "  nail trim ",
	}, earlyMon)
	require.NoError(t, err)
	assert.Equal(t, "Nail Trim", a.Service)
	assert.Equal(t, 15.0, a.Price)
}

func TestBook_UnknownPetOrClient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.BookAt(ctx, appointments.BookInput{
		TaxID: "12345678901", PetID: "missing", At: monday10, Service: "Bath",
	}, earlyMon)
	assert.True(t, errors.Is(err, errors.NotFound))

	_, err = f.svc.BookAt(ctx, appointments.BookInput{
		TaxID: "98765432100", PetID: f.rex.ID, At: monday10, Service: "Bath",
	}, earlyMon)
	assert.True(t, errors.Is(err, errors.NotFound))
	assert.Zero(t, f.ledger.Record().ServiceCount)
}

func TestBook_SnapshotSurvivesPetChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.BookAt(ctx, appointments.BookInput{
		TaxID: "12345678901", PetID: f.rex.ID, At: monday10, Service: "Hydration",
	}, earlyMon)
	require.NoError(t, err)
	assert.Equal(t, 120.0, a.Price)

	heavier := 30.0
	_, err = f.clients.UpdatePet(ctx, "12345678901", f.rex.ID, pets.UpdateInput{Weight: &heavier})
	require.NoError(t, err)
	_, err = f.clients.RemovePet(ctx, "12345678901", f.rex.ID)
	require.NoError(t, err)

	got, err := f.svc.ListByPet(ctx, f.rex.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pets.SizeMedium, got[0].Pet.Size)
	assert.Equal(t, 120.0, got[0].Price)
}

func TestListByPet_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	luna, err := f.clients.AddPet(ctx, "12345678901", pets.CreateInput{
		Name: "Luna", Species: "gato", Weight: 4, BirthDate: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, in := range []appointments.BookInput{
		{TaxID: "12345678901", PetID: f.rex.ID, At: monday10, Service: "Bath"},
		{TaxID: "12345678901", PetID: luna.ID, At: monday10.Add(time.Hour), Service: "Bath"},
		{TaxID: "12345678901", PetID: f.rex.ID, At: monday10.Add(2 * time.Hour), Service: "Nail Trim"},
	} {
		_, err := f.svc.BookAt(ctx, in, earlyMon)
		require.NoError(t, err)
	}

	rexOnly, err := f.svc.ListByPet(ctx, f.rex.ID)
	require.NoError(t, err)
	require.Len(t, rexOnly, 2)
	assert.Equal(t, "Bath", rexOnly[0].Service)
	assert.Equal(t, "Nail Trim", rexOnly[1].Service)

	lunaOnly, err := f.svc.ListByPet(ctx, luna.ID)
	require.NoError(t, err)
	require.Len(t, lunaOnly, 1)
	assert.Equal(t, 60.0, lunaOnly[0].Price)

	rec := f.ledger.Record()
	assert.Equal(t, 80.0+60.0+15.0, rec.Revenue)
	assert.Equal(t, 3, rec.ServiceCount)
}

func TestBook_LedgerRefusalLeavesHistoryEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.ledger.SetServiceCount(math.MaxInt))

	_, err := f.svc.BookAt(ctx, appointments.BookInput{
		TaxID: "12345678901", PetID: f.rex.ID, At: monday10, Service: "Bath",
	}, earlyMon)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	rec := f.ledger.Record()
	assert.Equal(t, math.MaxInt, rec.ServiceCount)
	assert.Zero(t, rec.Revenue)
}

type failingRepo struct{}

func (failingRepo) Append(context.Context, appointments.Appointment) error {
	return errors.New("disk full")
}

func (failingRepo) List(context.Context) ([]appointments.Appointment, error) {
	return nil, nil
}

func TestBook_AppendFailureRevertsLedger(t *testing.T) {
	f := newFixture(t)
	svc := appointments.NewService(failingRepo{}, f.clients, f.ledger)

	_, err := svc.BookAt(context.Background(), appointments.BookInput{
		TaxID: "12345678901", PetID: f.rex.ID, At: monday10, Service: "Bath",
	}, earlyMon)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	rec := f.ledger.Record()
	assert.Zero(t, rec.Revenue)
	assert.Zero(t, rec.ServiceCount)
}
