package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriteOff_SnapshotsBatchQuantity(t *testing.T) {
	batch := mustBatch(t, uuid.New(), "4.200", date(2024, 2, 1))

	wo, err := NewWriteOff(batch, "spoiled in transit")
	require.NoError(t, err)

	assert.Equal(t, batch.ProductID, wo.ProductID)
	assert.True(t, wo.Quantity.Equal(decimal.RequireFromString("4.2")))
	assert.Equal(t, "spoiled in transit", wo.Reason)
}

func TestNewWriteOff_RequiresReason(t *testing.T) {
	batch := mustBatch(t, uuid.New(), "1", date(2024, 2, 1))

	_, err := NewWriteOff(batch, "   ")
	assert.Error(t, err)

	// Batch untouched on rejection.
	assert.True(t, batch.Quantity.Equal(decimal.NewFromInt(1)))
}
