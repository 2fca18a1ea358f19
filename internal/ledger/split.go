// Package ledger records personal and group expenses and derives member
// balances from group expenses. Everything here is a pure function over
// in-memory values; loading and saving is the caller's job.
package ledger

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// SplitRequest carries the parts of a group expense submission that decide
// how its amount is shared.
type SplitRequest struct {
	Amount float64
	Kind   models.SplitKind
	// Splits is only read for custom splits.
	Splits map[string]float64
}

// ComputeEqualSplit gives every member the same share of amount, rounded to
// cents half away from zero. The rounding residual is not redistributed, so
// the shares can differ from amount by up to half a cent per member.
func ComputeEqualSplit(amount float64, members []string) (map[string]float64, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: must have at least one member to split equally", models.ErrInvalidInput)
	}

	share := decimal.NewFromFloat(amount).
		Div(decimal.NewFromInt(int64(len(members)))).
		Round(2).
		InexactFloat64()

	splits := make(map[string]float64, len(members))
	for _, m := range members {
		splits[m] = share
	}
	return splits, nil
}

// ResolveSplits returns the per-member amounts owed for a group expense.
// Equal splits are computed over the group's current members; a nil group
// means the referenced group does not exist. Custom splits are returned as
// submitted and are not checked against the expense amount.
func ResolveSplits(req SplitRequest, group *models.Group) (map[string]float64, error) {
	switch req.Kind {
	case models.SplitEqual:
		if group == nil {
			return nil, fmt.Errorf("%w: group", models.ErrNotFound)
		}
		return ComputeEqualSplit(req.Amount, group.Members)

	case models.SplitCustom:
		splits := make(map[string]float64, len(req.Splits))
		for member, amount := range req.Splits {
			if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
				return nil, fmt.Errorf("%w: split for %q must be a non-negative amount", models.ErrInvalidInput, member)
			}
			splits[member] = amount
		}
		return splits, nil

	default:
		return nil, fmt.Errorf("%w: split type %q must be %q or %q",
			models.ErrInvalidInput, req.Kind, models.SplitEqual, models.SplitCustom)
	}
}
