package fleet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVehicle(t *testing.T, ownership OwnershipType) *Vehicle {
	t.Helper()
	v, err := NewVehicle("ZH-123456", "Skoda", "Octavia", 2022, decimal.NewFromInt(80), ownership)
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("creates available vehicle", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipOwned)
		assert.Equal(t, VehicleStatusAvailable, v.Status)
		assert.True(t, v.IsBookable())
	})

	t.Run("rejects empty plate", func(t *testing.T) {
		_, err := NewVehicle("", "Skoda", "Octavia", 2022, decimal.NewFromInt(80), OwnershipOwned)
		assert.Error(t, err)
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		_, err := NewVehicle("ZH-123456", "Skoda", "Octavia", 2022, decimal.NewFromInt(-1), OwnershipOwned)
		assert.Error(t, err)
	})

	t.Run("rejects unknown ownership", func(t *testing.T) {
		_, err := NewVehicle("ZH-123456", "Skoda", "Octavia", 2022, decimal.NewFromInt(80), OwnershipType("LEASED"))
		assert.Error(t, err)
	})
}

func TestVehicleStatusTransitions(t *testing.T) {
	t.Run("unavailable vehicles are not bookable", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipOwned)
		require.NoError(t, v.MarkUnavailable())
		assert.False(t, v.IsBookable())
		require.NoError(t, v.MarkAvailable())
		assert.True(t, v.IsBookable())
	})

	t.Run("archived vehicles are frozen", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipOwned)
		require.NoError(t, v.Archive())
		assert.Error(t, v.MarkAvailable())
		assert.Error(t, v.MarkUnavailable())
		assert.Error(t, v.Archive())
		assert.Error(t, v.Update("Skoda", "Fabia", 2023, decimal.NewFromInt(60), ""))
		assert.False(t, v.IsBookable())
	})
}

func TestVehicleSetCommissionTerms(t *testing.T) {
	depositorID := uuid.New()

	t.Run("commission vehicle accepts terms", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipCommission)
		pct := decimal.NewFromInt(20)
		costs := decimal.NewFromInt(100)
		require.NoError(t, v.SetCommissionTerms(&depositorID, &pct, &costs))
		assert.True(t, v.EffectiveCommissionPercent().Equal(pct))
		assert.True(t, v.EffectiveMonthlyFixedCosts().Equal(costs))
	})

	t.Run("percentage rejected on owned vehicle", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipOwned)
		pct := decimal.NewFromInt(20)
		assert.Error(t, v.SetCommissionTerms(nil, &pct, nil))
	})

	t.Run("percentage must be within 0 and 100", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipCommission)
		over := decimal.NewFromInt(101)
		assert.Error(t, v.SetCommissionTerms(&depositorID, &over, nil))
		negative := decimal.NewFromInt(-1)
		assert.Error(t, v.SetCommissionTerms(&depositorID, &negative, nil))
	})

	t.Run("fixed costs cannot be negative", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipCommission)
		costs := decimal.NewFromInt(-50)
		assert.Error(t, v.SetCommissionTerms(&depositorID, nil, &costs))
	})

	t.Run("unset terms default to zero", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipCommission)
		assert.True(t, v.EffectiveCommissionPercent().IsZero())
		assert.True(t, v.EffectiveMonthlyFixedCosts().IsZero())
	})
}

func TestVehicleEligibleForCommissionReport(t *testing.T) {
	depositorID := uuid.New()

	t.Run("commission vehicle with depositor is eligible", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipCommission)
		require.NoError(t, v.SetCommissionTerms(&depositorID, nil, nil))
		assert.True(t, v.EligibleForCommissionReport())
	})

	t.Run("commission vehicle without depositor is skipped", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipCommission)
		assert.False(t, v.EligibleForCommissionReport())
	})

	t.Run("owned vehicle is never eligible", func(t *testing.T) {
		v := newTestVehicle(t, OwnershipOwned)
		require.NoError(t, v.SetCommissionTerms(&depositorID, nil, nil))
		assert.False(t, v.EligibleForCommissionReport())
	})
}
