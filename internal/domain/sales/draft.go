package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleLine is one uncommitted checkout line held in the session draft store.
type SaleLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// SaleDraft is the ordered list of checkout lines for one session.
type SaleDraft struct {
	Lines []SaleLine `json:"lines"`
}

// Add appends a line, merging quantities when the product already has one.
func (d *SaleDraft) Add(line SaleLine) {
	for i := range d.Lines {
		if d.Lines[i].ProductID == line.ProductID {
			d.Lines[i].Quantity = d.Lines[i].Quantity.Add(line.Quantity)
			return
		}
	}
	d.Lines = append(d.Lines, line)
}

// Remove drops the line at the given position. Out-of-range indexes are
// ignored.
func (d *SaleDraft) Remove(index int) {
	if index < 0 || index >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
}

// Empty reports whether the draft has no lines.
func (d *SaleDraft) Empty() bool {
	return len(d.Lines) == 0
}
