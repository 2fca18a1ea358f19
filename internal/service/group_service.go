package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/marilyndevx/FinFusion-V1/internal/ledger"
	"github.com/marilyndevx/FinFusion-V1/internal/models"
	"github.com/marilyndevx/FinFusion-V1/internal/settlement"
	"github.com/marilyndevx/FinFusion-V1/internal/storage"
	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

// GroupService implements the shared-expense procedures.
type GroupService struct {
	store storage.Store
}

var _ api.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	if err := ledger.ValidateGroup(req.Msg.Name, req.Msg.Members); err != nil {
		slog.Warn("CreateGroup rejected", "error", err)
		return nil, toConnectError(err)
	}

	group := &models.Group{
		Name:    req.Msg.Name,
		Members: req.Msg.Members,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.Group, len(groups))
	for i := range groups {
		out[i] = toAPIGroup(&groups[i])
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{Groups: out}), nil
}

// CreateGroupExpense records an expense paid by one member and split across
// the group.
func (s *GroupService) CreateGroupExpense(ctx context.Context, req *connect.Request[api.CreateGroupExpenseRequest]) (*connect.Response[api.CreateGroupExpenseResponse], error) {
	slog.Info("CreateGroupExpense request received",
		"group_id", req.Msg.GroupID,
		"amount", req.Msg.Amount,
		"paid_by", req.Msg.PaidBy,
		"split_type", req.Msg.SplitType,
	)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Warn("CreateGroupExpense failed - group not found", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	expense, err := ledger.NewGroupExpense(ledger.GroupExpenseInput{
		GroupID:     req.Msg.GroupID,
		Amount:      req.Msg.Amount,
		Category:    req.Msg.Category,
		Description: req.Msg.Description,
		PaidBy:      req.Msg.PaidBy,
		SplitKind:   models.SplitKind(req.Msg.SplitType),
		Splits:      req.Msg.Splits,
		Date:        req.Msg.Date,
	}, group)
	if err != nil {
		slog.Warn("CreateGroupExpense rejected", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateGroupExpense(ctx, expense); err != nil {
		slog.Error("CreateGroupExpense failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group expense created",
		"group_id", expense.GroupID,
		"expense_id", expense.ID,
		"splits_count", len(expense.Splits),
	)

	return connect.NewResponse(&api.CreateGroupExpenseResponse{
		Expense: toAPIGroupExpense(expense),
	}), nil
}

// ListGroupExpenses returns a group's expenses, newest date first.
func (s *GroupService) ListGroupExpenses(ctx context.Context, req *connect.Request[api.ListGroupExpensesRequest]) (*connect.Response[api.ListGroupExpensesResponse], error) {
	slog.Info("ListGroupExpenses request received", "group_id", req.Msg.GroupID)

	if _, err := s.store.GetGroup(ctx, req.Msg.GroupID); err != nil {
		slog.Warn("ListGroupExpenses failed - group not found", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	expenses, err := s.store.ListGroupExpenses(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("ListGroupExpenses failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.GroupExpense, len(expenses))
	for i := range expenses {
		out[i] = toAPIGroupExpense(&expenses[i])
	}

	slog.Info("ListGroupExpenses successful", "group_id", req.Msg.GroupID, "count", len(out))

	return connect.NewResponse(&api.ListGroupExpensesResponse{Expenses: out}), nil
}

// GetGroupBalances nets every expense in a group and proposes the transfers
// that settle it.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	groupID := req.Msg.GroupID
	slog.Info("GetGroupBalances request received", "group_id", groupID)

	var (
		group    *models.Group
		expenses []models.GroupExpense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		group, err = s.store.GetGroup(gctx, groupID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListGroupExpenses(gctx, groupID)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("GetGroupBalances failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	balances := ledger.ComputeBalances(expenses)
	// Members nobody has paid for or split with still show up.
	for _, member := range group.Members {
		if _, ok := balances[member]; !ok {
			balances[member] = 0
		}
	}

	result := settlement.Settle(balances)

	slog.Info("GetGroupBalances successful",
		"group_id", groupID,
		"expenses_count", len(expenses),
		"members_count", len(result.Balances),
		"settlements_count", len(result.Transfers),
	)

	return connect.NewResponse(&api.GetGroupBalancesResponse{
		Balances:    result.Balances,
		Settlements: toAPISettlements(result.Transfers),
	}), nil
}
