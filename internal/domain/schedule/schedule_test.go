package schedule

import (
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-10 es lunes; 2025-03-15 sábado; 2025-03-16 domingo.
var (
	monday   = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	// Siempre antes de los turnos de prueba.
	earlier = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

func slot(day time.Time, h, m int) time.Time {
	return At(day, Clock{h, m}, time.UTC)
}

func TestCheck_SundayAlwaysClosed(t *testing.T) {
	for h := 0; h < 24; h++ {
		err := Check(slot(sunday, h, 0), earlier)
		require.Error(t, err, "hour %d", h)
		assert.True(t, errors.Is(err, ErrOutsideBusinessHours))
	}
}

func TestCheck_SaturdayBoundaries(t *testing.T) {
	assert.True(t, IsValid(slot(saturday, 9, 0), earlier))
	assert.True(t, IsValid(slot(saturday, 13, 0), earlier))
	assert.False(t, IsValid(slot(saturday, 8, 59), earlier))
	assert.False(t, IsValid(slot(saturday, 13, 1), earlier))
}

func TestCheck_WeekdayBoundaries(t *testing.T) {
	for d := 0; d < 5; d++ {
		day := monday.AddDate(0, 0, d)
		assert.True(t, IsValid(slot(day, 8, 0), earlier), day.Weekday())
		assert.True(t, IsValid(slot(day, 18, 0), earlier), day.Weekday())
		assert.False(t, IsValid(slot(day, 7, 59), earlier), day.Weekday())
		assert.False(t, IsValid(slot(day, 18, 1), earlier), day.Weekday())
	}
}

func TestCheck_PastSlotFailsEvenInsideHours(t *testing.T) {
	now := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)

	err := Check(slot(monday, 10, 0), now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSlotInPast))
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.False(t, errors.Is(err, ErrOutsideBusinessHours))

	// Día anterior.
	err = Check(slot(monday.AddDate(0, 0, -1), 10, 0), now)
	assert.True(t, errors.Is(err, ErrSlotInPast))

	// Mismo minuto pero "ahora" ya tiene segundos: queda en el pasado.
	err = Check(slot(monday, 11, 0), now.Add(30*time.Second))
	assert.True(t, errors.Is(err, ErrSlotInPast))

	// Más tarde el mismo día: válido.
	assert.NoError(t, Check(slot(monday, 11, 30), now))
}

func TestCheck_ComparesInSlotLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	at := At(monday, Clock{10, 0}, loc) // 13:00 UTC

	// 12:30 UTC = 09:30 local: todavía no pasó.
	assert.NoError(t, Check(at, time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)))
	// 13:30 UTC = 10:30 local: ya pasó.
	assert.True(t, errors.Is(Check(at, time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC)), ErrSlotInPast))
}

func TestHours(t *testing.T) {
	_, open := Hours(time.Sunday)
	assert.False(t, open)

	w, open := Hours(time.Saturday)
	require.True(t, open)
	assert.Equal(t, "09:00", w.Open.String())
	assert.Equal(t, "13:00", w.Close.String())
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:05")
	require.NoError(t, err)
	assert.Equal(t, Clock{8, 5}, c)

	_, err = ParseClock("25:00")
	assert.True(t, errors.Is(err, errors.NotValid))
}
