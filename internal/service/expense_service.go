package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/marilyndevx/FinFusion-V1/internal/ledger"
	"github.com/marilyndevx/FinFusion-V1/internal/receipt"
	"github.com/marilyndevx/FinFusion-V1/internal/storage"
	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

// ExpenseService implements the personal expense procedures.
type ExpenseService struct {
	store     storage.Store
	extractor receipt.Extractor
}

var _ api.ExpenseServiceHandler = (*ExpenseService)(nil)

// NewExpenseService creates an ExpenseService. A nil extractor falls back to
// the placeholder.
func NewExpenseService(store storage.Store, extractor receipt.Extractor) *ExpenseService {
	if extractor == nil {
		extractor = receipt.NewPlaceholderExtractor()
	}
	return &ExpenseService{store: store, extractor: extractor}
}

// CreateExpense validates and records a personal expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"amount", req.Msg.Amount,
		"category", req.Msg.Category,
		"date", req.Msg.Date,
	)

	expense, err := ledger.NewExpense(ledger.ExpenseInput{
		Amount:      req.Msg.Amount,
		Category:    req.Msg.Category,
		Description: req.Msg.Description,
		Date:        req.Msg.Date,
	})
	if err != nil {
		slog.Warn("CreateExpense rejected", "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "category", expense.Category)

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// ListExpenses returns every personal expense, newest date first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received")

	expenses, err := s.store.ListExpenses(ctx, storage.ExpenseQuery{})
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.Expense, len(expenses))
	for i := range expenses {
		out[i] = toAPIExpense(&expenses[i])
	}

	slog.Info("ListExpenses successful", "count", len(out))

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes a personal expense by ID.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseID)

	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseID)

	return connect.NewResponse(&api.DeleteExpenseResponse{Message: "Expense deleted"}), nil
}

// ScanReceipt turns a receipt image into an unsaved expense draft.
func (s *ExpenseService) ScanReceipt(ctx context.Context, req *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ReceiptDraft], error) {
	slog.Info("ScanReceipt request received", "bytes", len(req.Msg.Image))

	draft, err := s.extractor.Extract(ctx, req.Msg.Image)
	if err != nil {
		slog.Warn("ScanReceipt failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ScanReceipt successful", "amount", draft.Amount, "category", draft.Category)

	return connect.NewResponse(&api.ReceiptDraft{
		Amount:      draft.Amount,
		Category:    ledger.NormalizeCategory(draft.Category),
		Description: draft.Description,
	}), nil
}
