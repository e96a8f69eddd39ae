package table

import (
	"fmt"

	"github.com/arloliu/codetable/errs"
	"github.com/arloliu/codetable/internal/collision"
	"github.com/hashicorp/go-multierror"
)

// Validate checks the table invariants the codec relies on and reports every
// violation at once:
//   - errs.ErrEmptyLabel for entries without a label
//   - errs.ErrMisalignedBlock for inline-offset entries whose value has a non-zero low byte
//   - errs.ErrDuplicateValue for code values used more than once
//   - errs.ErrDuplicateLabel for labels used more than once
//
// The returned error is a *multierror.Error; use errors.Is to test for a kind.
// Validate returns nil for a valid table.
func (t *Table) Validate() error {
	var result *multierror.Error

	values := collision.NewTracker[uint16](len(t.entries))
	labels := collision.NewTracker[string](len(t.entries))

	for i, e := range t.entries {
		if e.label == "" {
			result = multierror.Append(result,
				fmt.Errorf("%w: entry %d (value 0x%04x)", errs.ErrEmptyLabel, i, e.value))
		} else {
			labels.Track(e.label, i)
		}

		if e.kind == KindInlineOffset && e.value&^blockMask != 0 {
			result = multierror.Append(result,
				fmt.Errorf("%w: entry %d %q has value 0x%04x", errs.ErrMisalignedBlock, i, e.label, e.value))
		}

		values.Track(e.value, i)
	}

	for _, d := range values.Duplicates() {
		result = multierror.Append(result,
			fmt.Errorf("%w: 0x%04x used by entries %d and %d", errs.ErrDuplicateValue, d.Key, d.First, d.Position))
	}
	for _, d := range labels.Duplicates() {
		result = multierror.Append(result,
			fmt.Errorf("%w: %q used by entries %d and %d", errs.ErrDuplicateLabel, d.Key, d.First, d.Position))
	}

	return result.ErrorOrNil()
}
