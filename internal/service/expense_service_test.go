package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

func TestCreateExpense(t *testing.T) {
	s := setupTestServer(t)

	exp := s.addExpense(t, 450.75, " food ", "2024-03-05T18:30:00Z")

	if exp.ID == "" {
		t.Error("expected non-empty expense ID")
	}
	if exp.Category != "Food" {
		t.Errorf("category: expected 'Food', got '%s'", exp.Category)
	}
	if exp.Date != "2024-03-05" {
		t.Errorf("date: expected '2024-03-05', got '%s'", exp.Date)
	}
	if exp.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateExpense_EmptyCategoryIsOther(t *testing.T) {
	s := setupTestServer(t)

	exp := s.addExpense(t, 10, "", "2024-03-05")
	if exp.Category != "Other" {
		t.Errorf("category: expected 'Other', got '%s'", exp.Category)
	}
}

func TestCreateExpense_KeepsMixedCaseCategory(t *testing.T) {
	s := setupTestServer(t)

	exp := s.addExpense(t, 80000, " iPhone ", "2024-03-05")
	if exp.Category != "iPhone" {
		t.Errorf("category: expected 'iPhone', got '%s'", exp.Category)
	}
}

func TestCreateExpense_Invalid(t *testing.T) {
	s := setupTestServer(t)

	tests := []struct {
		name string
		req  *api.CreateExpenseRequest
	}{
		{"zero amount", &api.CreateExpenseRequest{Amount: 0, Date: "2024-03-05"}},
		{"negative amount", &api.CreateExpenseRequest{Amount: -5, Date: "2024-03-05"}},
		{"bad date", &api.CreateExpenseRequest{Amount: 5, Date: "05/03/2024"}},
		{"missing date", &api.CreateExpenseRequest{Amount: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.client.CreateExpense(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestListExpenses_NewestFirst(t *testing.T) {
	s := setupTestServer(t)

	s.addExpense(t, 10, "Food", "2024-03-01")
	s.addExpense(t, 20, "Food", "2024-03-20")
	s.addExpense(t, 30, "Food", "2024-03-10")

	resp, err := s.client.ListExpenses(context.Background(), connect.NewRequest(&api.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}

	want := []string{"2024-03-20", "2024-03-10", "2024-03-01"}
	if len(resp.Msg.Expenses) != len(want) {
		t.Fatalf("expected %d expenses, got %d", len(want), len(resp.Msg.Expenses))
	}
	for i, exp := range resp.Msg.Expenses {
		if exp.Date != want[i] {
			t.Errorf("expense %d: expected date %s, got %s", i, want[i], exp.Date)
		}
	}
}

func TestDeleteExpense(t *testing.T) {
	s := setupTestServer(t)
	exp := s.addExpense(t, 10, "Food", "2024-03-01")

	resp, err := s.client.DeleteExpense(context.Background(), connect.NewRequest(&api.DeleteExpenseRequest{
		ExpenseID: exp.ID,
	}))
	if err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	if resp.Msg.Message == "" {
		t.Error("expected a confirmation message")
	}

	// Deleting again reports the expense as gone.
	_, err = s.client.DeleteExpense(context.Background(), connect.NewRequest(&api.DeleteExpenseRequest{
		ExpenseID: exp.ID,
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestScanReceipt(t *testing.T) {
	s := setupTestServer(t)

	resp, err := s.client.ScanReceipt(context.Background(), connect.NewRequest(&api.ScanReceiptRequest{
		Image: pngBytes(t),
	}))
	if err != nil {
		t.Fatalf("ScanReceipt failed: %v", err)
	}
	if resp.Msg.Amount <= 0 {
		t.Errorf("expected a positive draft amount, got %v", resp.Msg.Amount)
	}
	if resp.Msg.Category != "Food" {
		t.Errorf("category: expected 'Food', got '%s'", resp.Msg.Category)
	}

	// Drafts are never saved.
	list, err := s.client.ListExpenses(context.Background(), connect.NewRequest(&api.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 0 {
		t.Errorf("expected no stored expenses, got %d", len(list.Msg.Expenses))
	}
}

func TestScanReceipt_RejectsNonImage(t *testing.T) {
	s := setupTestServer(t)

	for _, img := range [][]byte{nil, []byte("definitely not a picture")} {
		_, err := s.client.ScanReceipt(context.Background(), connect.NewRequest(&api.ScanReceiptRequest{Image: img}))
		assertCode(t, err, connect.CodeInvalidArgument)
	}
}
