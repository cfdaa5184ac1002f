package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSupplyDraft_AddMergesByProductAndDate(t *testing.T) {
	productID := uuid.New()
	var draft SupplyDraft

	draft.Add(SupplyLine{ProductID: productID, Quantity: decimal.NewFromInt(2), ProducedAt: date(2024, 1, 1)})
	draft.Add(SupplyLine{ProductID: productID, Quantity: decimal.NewFromInt(3), ProducedAt: date(2024, 1, 1)})
	draft.Add(SupplyLine{ProductID: productID, Quantity: decimal.NewFromInt(1), ProducedAt: date(2024, 1, 2)})

	assert.Len(t, draft.Lines, 2)
	assert.True(t, draft.Lines[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, draft.Lines[1].Quantity.Equal(decimal.NewFromInt(1)))
}

func TestSupplyDraft_Remove(t *testing.T) {
	var draft SupplyDraft
	draft.Add(SupplyLine{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1), ProducedAt: date(2024, 1, 1)})
	draft.Add(SupplyLine{ProductID: uuid.New(), Quantity: decimal.NewFromInt(2), ProducedAt: date(2024, 1, 1)})

	draft.Remove(0)
	assert.Len(t, draft.Lines, 1)
	assert.True(t, draft.Lines[0].Quantity.Equal(decimal.NewFromInt(2)))

	draft.Remove(5) // out of range is a no-op
	assert.Len(t, draft.Lines, 1)

	draft.Remove(0)
	assert.True(t, draft.Empty())
}
