package finance

import (
	"math"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := NewLedger("undefined")
	require.NoError(t, err)
	l.now = func() time.Time { return fixedNow }
	return l
}

func TestNewLedger_StartsEmpty(t *testing.T) {
	l := newTestLedger(t)
	s := l.Summary()

	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.ServiceCount)
	assert.Zero(t, s.Expenses)
	assert.Zero(t, s.Balance)
	assert.Equal(t, "undefined", s.PaymentMethod)
	assert.False(t, s.RecordDate.IsZero())

	_, err := NewLedger("  ")
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestRecordService_AccumulatesRevenueAndCount(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.RecordService(80))
	require.NoError(t, l.RecordService(15))
	require.NoError(t, l.RecordService(0))

	r := l.Record()
	assert.Equal(t, 95.0, r.Revenue)
	assert.Equal(t, 3, r.ServiceCount)
}

func TestRecordService_RejectsNegative(t *testing.T) {
	l := newTestLedger(t)

	for _, v := range []float64{-0.01, math.NaN(), math.Inf(1)} {
		err := l.RecordService(v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.NotValid))
	}
	assert.Zero(t, l.Record().Revenue)
	assert.Zero(t, l.Record().ServiceCount)
}

func TestBalance_IsRevenueMinusExpenses(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.RecordService(130))
	require.NoError(t, l.RecordExpense(50.5))
	require.NoError(t, l.RecordExpense(100))
	assert.Equal(t, -20.5, l.Balance())
	assert.Equal(t, 150.5, l.Summary().Expenses)
	assert.Equal(t, l.Balance(), l.Summary().Balance)

	err := l.RecordExpense(-1)
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Equal(t, -20.5, l.Balance())
}

func TestSetPaymentMethod(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.SetPaymentMethod(" pix "))
	assert.Equal(t, "pix", l.Record().PaymentMethod)

	assert.True(t, errors.Is(l.SetPaymentMethod(""), errors.NotValid))
	assert.Equal(t, "pix", l.Record().PaymentMethod)
}

func TestSetRecordDate_RejectsFuture(t *testing.T) {
	l := newTestLedger(t)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, l.SetRecordDate(today))
	assert.Equal(t, today, l.Record().RecordDate)

	err := l.SetRecordDate(today.AddDate(0, 0, 1))
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.Equal(t, today, l.Record().RecordDate)
}

func TestManualCorrections(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.SetRevenue(500))
	require.NoError(t, l.SetServiceCount(7))
	assert.Equal(t, 500.0, l.Record().Revenue)
	assert.Equal(t, 7, l.Record().ServiceCount)

	assert.True(t, errors.Is(l.SetRevenue(-1), errors.NotValid))
	assert.True(t, errors.Is(l.SetServiceCount(-1), errors.NotValid))
	assert.Equal(t, 7, l.Record().ServiceCount)
}

func TestNewRecord_Validates(t *testing.T) {
	_, err := NewRecord(-1, 0, "cash", fixedNow, fixedNow)
	assert.True(t, errors.Is(err, errors.NotValid))

	_, err = NewRecord(0, -1, "cash", fixedNow, fixedNow)
	assert.True(t, errors.Is(err, errors.NotValid))

	_, err = NewRecord(0, 0, "cash", fixedNow.AddDate(0, 0, 2), fixedNow)
	assert.True(t, errors.Is(err, errors.NotValid))

	r, err := NewRecord(10, 1, "cash", fixedNow, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 10.0, r.Balance())
}

func TestRecordService_RefusesCountOverflow(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.SetServiceCount(math.MaxInt))

	err := l.RecordService(10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))

	rec := l.Record()
	assert.Equal(t, math.MaxInt, rec.ServiceCount)
	assert.Zero(t, rec.Revenue)
}

func TestTotals_StayFinite(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.RecordExpense(math.MaxFloat64))
	err := l.RecordExpense(math.MaxFloat64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid))

	require.NoError(t, l.SetRevenue(math.MaxFloat64))
	err = l.RecordService(math.MaxFloat64)
	require.Error(t, err)

	rec := l.Record()
	assert.Equal(t, math.MaxFloat64, rec.Expenses)
	assert.Equal(t, math.MaxFloat64, rec.Revenue)
	assert.Zero(t, rec.ServiceCount)
	assert.False(t, math.IsInf(l.Balance(), 0))
	assert.False(t, math.IsNaN(l.Balance()))
}

func TestRevertService(t *testing.T) {
	l := newTestLedger(t)

	require.Error(t, l.RevertService(10))

	require.NoError(t, l.RecordService(80))
	require.NoError(t, l.RevertService(80))
	rec := l.Record()
	assert.Zero(t, rec.Revenue)
	assert.Zero(t, rec.ServiceCount)
}
