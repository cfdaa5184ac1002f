package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplyLine is one uncommitted intake line a user is assembling before
// confirming a supply. Lines live in the session draft store, not the
// database.
type SupplyLine struct {
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	ProducedAt time.Time       `json:"produced_at"`
}

// SupplyDraft is the ordered list of intake lines for one session.
type SupplyDraft struct {
	Lines []SupplyLine `json:"lines"`
}

// Add appends a line, merging quantities when a line with the same
// (product, produced-at date) key already exists.
func (d *SupplyDraft) Add(line SupplyLine) {
	line.ProducedAt = DateOf(line.ProducedAt)
	for i := range d.Lines {
		if d.Lines[i].ProductID == line.ProductID && d.Lines[i].ProducedAt.Equal(line.ProducedAt) {
			d.Lines[i].Quantity = d.Lines[i].Quantity.Add(line.Quantity)
			return
		}
	}
	d.Lines = append(d.Lines, line)
}

// Remove drops the line at the given position. Out-of-range indexes are
// ignored.
func (d *SupplyDraft) Remove(index int) {
	if index < 0 || index >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
}

// Empty reports whether the draft has no lines.
func (d *SupplyDraft) Empty() bool {
	return len(d.Lines) == 0
}
