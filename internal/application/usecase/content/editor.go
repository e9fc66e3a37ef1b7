// Package content holds the editing core: a generic CRUD engine over the
// identified portfolio collections and the edit session that commits working
// state back to the store.
package content

import (
	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
)

// fieldRecord is the editor's view of a record: identified, and able to
// produce an updated copy of itself for a named field.
type fieldRecord[T any] interface {
	portfolio.Record
	SetField(name, value string) (T, bool)
}

// Add prepends the record produced by the factory. The factory must assign a
// fresh id (the IDGenerator guarantees uniqueness); newest entries display
// first. The input sequence is not mutated.
func Add[T portfolio.Record](seq []T, factory func() T) []T {
	out := make([]T, 0, len(seq)+1)
	out = append(out, factory())
	out = append(out, seq...)
	return out
}

// Remove returns the sequence without the matching record. An unknown id is
// a no-op, not an error, so removal is idempotent.
func Remove[T portfolio.Record](seq []T, id int64) []T {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}
	out := make([]T, 0, len(seq)-1)
	out = append(out, seq[:idx]...)
	out = append(out, seq[idx+1:]...)
	return out
}

// Update replaces one field of the matching record. Unknown id or unknown
// field leaves the sequence unchanged; every other record is untouched.
func Update[T fieldRecord[T]](seq []T, id int64, field, value string) []T {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}
	updated, ok := seq[idx].SetField(field, value)
	if !ok {
		return seq
	}
	out := make([]T, len(seq))
	copy(out, seq)
	out[idx] = updated
	return out
}

func indexOf[T portfolio.Record](seq []T, id int64) int {
	for i, r := range seq {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}
