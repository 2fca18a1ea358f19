package analytics

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/marilyndevx/FinFusion-V1/internal/models"
)

// AdvisoryError is a failure inside an advisory heuristic. It is logged and
// replaced by a safe default; callers of the exported functions never see it.
type AdvisoryError struct {
	Op  string
	Err error
}

func (e *AdvisoryError) Error() string {
	return fmt.Sprintf("analytics %s: %v", e.Op, e.Err)
}

func (e *AdvisoryError) Unwrap() error {
	return e.Err
}

func advisoryf(op, format string, args ...any) *AdvisoryError {
	return &AdvisoryError{Op: op, Err: fmt.Errorf(format, args...)}
}

func logAdvisory(err error) {
	slog.Error("Advisory computation failed, using fallback", "error", err)
}

// recoverAdvisory turns a panic inside op into a logged AdvisoryError and
// runs fallback.
func recoverAdvisory(op string, fallback func()) {
	if r := recover(); r != nil {
		logAdvisory(advisoryf(op, "panic: %v", r))
		fallback()
	}
}

func checkExpense(op string, e models.Expense) error {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) || e.Amount < 0 {
		return advisoryf(op, "expense %s has invalid amount %v", e.ID, e.Amount)
	}
	if e.Date.IsZero() {
		return advisoryf(op, "expense %s has no date", e.ID)
	}
	return nil
}
