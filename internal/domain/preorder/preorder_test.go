package preorder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreorder_ValidatesPickupTime(t *testing.T) {
	pickup := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	p, err := NewPreorder(uuid.New(), pickup, "14:30", "ring the back door")
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, p.Status)

	_, err = NewPreorder(uuid.New(), pickup, "25:00", "")
	assert.Error(t, err)

	_, err = NewPreorder(uuid.New(), pickup, "", "")
	assert.NoError(t, err, "pickup time is optional")
}

func TestPreorder_Transitions(t *testing.T) {
	pickup := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewPreorder(uuid.New(), pickup, "", "")
	require.NoError(t, err)
	require.NoError(t, p.AddItem(uuid.New(), decimal.NewFromInt(2)))

	require.NoError(t, p.Complete())
	assert.Equal(t, StatusCompleted, p.Status)
	assert.NotNil(t, p.CompletedAt)

	// Completed preorders cannot transition again.
	assert.Error(t, p.Complete())
	assert.Error(t, p.Cancel("changed my mind"))
}

func TestPreorder_CancelRequiresReason(t *testing.T) {
	pickup := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewPreorder(uuid.New(), pickup, "", "")
	require.NoError(t, err)

	assert.Error(t, p.Cancel("  "))
	assert.Equal(t, StatusOpen, p.Status)

	require.NoError(t, p.Cancel("customer no-show"))
	assert.Equal(t, StatusCancelled, p.Status)
	assert.Equal(t, "customer no-show", p.CancelReason)
}
