package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

func TestCreateGroup(t *testing.T) {
	s := setupTestServer(t)

	group := s.addGroup(t, "Roommates", "Alice", "Bob", "Charlie")

	if group.ID == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Name != "Roommates" {
		t.Errorf("name: expected 'Roommates', got '%s'", group.Name)
	}
	if len(group.Members) != 3 {
		t.Errorf("members: expected 3, got %d", len(group.Members))
	}
	if group.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateGroup_Invalid(t *testing.T) {
	s := setupTestServer(t)

	tests := []struct {
		name    string
		group   string
		members []string
	}{
		{"blank name", "  ", []string{"Alice"}},
		{"duplicate member", "Trip", []string{"Alice", "Alice"}},
		{"blank member", "Trip", []string{"Alice", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.client.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{
				Name:    tt.group,
				Members: tt.members,
			}))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestGetGroup(t *testing.T) {
	s := setupTestServer(t)
	created := s.addGroup(t, "Work Lunch", "Diana", "Eve")

	resp, err := s.client.GetGroup(context.Background(), connect.NewRequest(&api.GetGroupRequest{
		GroupID: created.ID,
	}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}

	if resp.Msg.Group.Name != "Work Lunch" {
		t.Errorf("name: expected 'Work Lunch', got '%s'", resp.Msg.Group.Name)
	}
	if len(resp.Msg.Group.Members) != 2 || resp.Msg.Group.Members[0] != "Diana" || resp.Msg.Group.Members[1] != "Eve" {
		t.Errorf("members: expected [Diana Eve], got %v", resp.Msg.Group.Members)
	}
}

func TestGetGroup_NotFound(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.client.GetGroup(context.Background(), connect.NewRequest(&api.GetGroupRequest{
		GroupID: "non-existent-id",
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListGroups(t *testing.T) {
	s := setupTestServer(t)
	s.addGroup(t, "Group 1", "Alice", "Bob")
	s.addGroup(t, "Group 2", "Charlie", "Diana")

	resp, err := s.client.ListGroups(context.Background(), connect.NewRequest(&api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 2 {
		t.Errorf("expected 2 groups, got %d", len(resp.Msg.Groups))
	}
}

func TestCreateGroupExpense_EqualSplit(t *testing.T) {
	s := setupTestServer(t)
	group := s.addGroup(t, "Trip", "Alice", "Bob", "Carol")

	resp, err := s.client.CreateGroupExpense(context.Background(), connect.NewRequest(&api.CreateGroupExpenseRequest{
		GroupID:   group.ID,
		Amount:    100,
		Category:  "food",
		PaidBy:    "Alice",
		SplitType: "equal",
		Date:      "2024-03-10",
	}))
	if err != nil {
		t.Fatalf("CreateGroupExpense failed: %v", err)
	}

	exp := resp.Msg.Expense
	if exp.Category != "Food" {
		t.Errorf("category: expected 'Food', got '%s'", exp.Category)
	}
	for _, member := range group.Members {
		if exp.Splits[member] != 33.33 {
			t.Errorf("split for %s: expected 33.33, got %v", member, exp.Splits[member])
		}
	}
}

func TestCreateGroupExpense_CustomSplit(t *testing.T) {
	s := setupTestServer(t)
	group := s.addGroup(t, "Trip", "Alice", "Bob")

	resp, err := s.client.CreateGroupExpense(context.Background(), connect.NewRequest(&api.CreateGroupExpenseRequest{
		GroupID:   group.ID,
		Amount:    100,
		PaidBy:    "Bob",
		SplitType: "custom",
		Splits:    map[string]float64{"Alice": 70, "Bob": 30},
		Date:      "2024-03-10",
	}))
	if err != nil {
		t.Fatalf("CreateGroupExpense failed: %v", err)
	}

	if got := resp.Msg.Expense.Splits; got["Alice"] != 70 || got["Bob"] != 30 {
		t.Errorf("splits: expected Alice=70 Bob=30, got %v", got)
	}
}

func TestCreateGroupExpense_Errors(t *testing.T) {
	s := setupTestServer(t)
	group := s.addGroup(t, "Trip", "Alice", "Bob")

	tests := []struct {
		name string
		req  *api.CreateGroupExpenseRequest
		want connect.Code
	}{
		{
			name: "unknown group",
			req:  &api.CreateGroupExpenseRequest{GroupID: "missing", Amount: 10, PaidBy: "Alice", SplitType: "equal", Date: "2024-03-10"},
			want: connect.CodeNotFound,
		},
		{
			name: "unknown group with custom split",
			req:  &api.CreateGroupExpenseRequest{GroupID: "missing", Amount: 10, PaidBy: "Alice", SplitType: "custom", Splits: map[string]float64{"Alice": 10}, Date: "2024-03-10"},
			want: connect.CodeNotFound,
		},
		{
			name: "payer outside group",
			req:  &api.CreateGroupExpenseRequest{GroupID: group.ID, Amount: 10, PaidBy: "Mallory", SplitType: "equal", Date: "2024-03-10"},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown split type",
			req:  &api.CreateGroupExpenseRequest{GroupID: group.ID, Amount: 10, PaidBy: "Alice", SplitType: "percent", Date: "2024-03-10"},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "negative custom share",
			req:  &api.CreateGroupExpenseRequest{GroupID: group.ID, Amount: 10, PaidBy: "Alice", SplitType: "custom", Splits: map[string]float64{"Bob": -10}, Date: "2024-03-10"},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "zero amount",
			req:  &api.CreateGroupExpenseRequest{GroupID: group.ID, Amount: 0, PaidBy: "Alice", SplitType: "equal", Date: "2024-03-10"},
			want: connect.CodeInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.client.CreateGroupExpense(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.want)
		})
	}
}

func TestListGroupExpenses(t *testing.T) {
	s := setupTestServer(t)
	group := s.addGroup(t, "Trip", "Alice", "Bob")

	for _, date := range []string{"2024-03-01", "2024-03-15"} {
		_, err := s.client.CreateGroupExpense(context.Background(), connect.NewRequest(&api.CreateGroupExpenseRequest{
			GroupID: group.ID, Amount: 20, PaidBy: "Alice", SplitType: "equal", Date: date,
		}))
		if err != nil {
			t.Fatalf("CreateGroupExpense failed: %v", err)
		}
	}

	resp, err := s.client.ListGroupExpenses(context.Background(), connect.NewRequest(&api.ListGroupExpensesRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("ListGroupExpenses failed: %v", err)
	}
	if len(resp.Msg.Expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(resp.Msg.Expenses))
	}
	if resp.Msg.Expenses[0].Date != "2024-03-15" {
		t.Errorf("expected newest first, got %s", resp.Msg.Expenses[0].Date)
	}

	_, err = s.client.ListGroupExpenses(context.Background(), connect.NewRequest(&api.ListGroupExpensesRequest{
		GroupID: "missing",
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetGroupBalances(t *testing.T) {
	s := setupTestServer(t)
	group := s.addGroup(t, "Flat", "Alice", "Bob", "Carol", "Dave")

	// Alice pays 90 for Alice, Bob and Carol. Dave is never involved.
	_, err := s.client.CreateGroupExpense(context.Background(), connect.NewRequest(&api.CreateGroupExpenseRequest{
		GroupID:   group.ID,
		Amount:    90,
		PaidBy:    "Alice",
		SplitType: "custom",
		Splits:    map[string]float64{"Alice": 30, "Bob": 30, "Carol": 30},
		Date:      "2024-03-10",
	}))
	if err != nil {
		t.Fatalf("CreateGroupExpense failed: %v", err)
	}

	resp, err := s.client.GetGroupBalances(context.Background(), connect.NewRequest(&api.GetGroupBalancesRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}

	wantBalances := map[string]float64{"Alice": 60, "Bob": -30, "Carol": -30, "Dave": 0}
	if len(resp.Msg.Balances) != len(wantBalances) {
		t.Fatalf("expected %d balances, got %v", len(wantBalances), resp.Msg.Balances)
	}
	for member, want := range wantBalances {
		if got, ok := resp.Msg.Balances[member]; !ok || got != want {
			t.Errorf("balance for %s: expected %v, got %v", member, want, got)
		}
	}

	wantSettlements := []api.Settlement{
		{From: "Bob", To: "Alice", Amount: 30},
		{From: "Carol", To: "Alice", Amount: 30},
	}
	if len(resp.Msg.Settlements) != len(wantSettlements) {
		t.Fatalf("expected %d settlements, got %v", len(wantSettlements), resp.Msg.Settlements)
	}
	for i, want := range wantSettlements {
		if resp.Msg.Settlements[i] != want {
			t.Errorf("settlement %d: expected %+v, got %+v", i, want, resp.Msg.Settlements[i])
		}
	}
}

func TestGetGroupBalances_EmptyGroup(t *testing.T) {
	s := setupTestServer(t)
	group := s.addGroup(t, "Quiet", "Alice", "Bob")

	resp, err := s.client.GetGroupBalances(context.Background(), connect.NewRequest(&api.GetGroupBalancesRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	if resp.Msg.Balances["Alice"] != 0 || resp.Msg.Balances["Bob"] != 0 {
		t.Errorf("expected zero balances, got %v", resp.Msg.Balances)
	}
	if len(resp.Msg.Settlements) != 0 {
		t.Errorf("expected no settlements, got %v", resp.Msg.Settlements)
	}
}

func TestGetGroupBalances_NotFound(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.client.GetGroupBalances(context.Background(), connect.NewRequest(&api.GetGroupBalancesRequest{
		GroupID: "non-existent",
	}))
	assertCode(t, err, connect.CodeNotFound)
}
