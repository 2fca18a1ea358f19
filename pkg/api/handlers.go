package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// ExpenseServiceHandler is implemented by the personal expense service.
type ExpenseServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	ScanReceipt(context.Context, *connect.Request[ScanReceiptRequest]) (*connect.Response[ReceiptDraft], error)
}

// GroupServiceHandler is implemented by the shared-expense group service.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	CreateGroupExpense(context.Context, *connect.Request[CreateGroupExpenseRequest]) (*connect.Response[CreateGroupExpenseResponse], error)
	ListGroupExpenses(context.Context, *connect.Request[ListGroupExpensesRequest]) (*connect.Response[ListGroupExpensesResponse], error)
	GetGroupBalances(context.Context, *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error)
}

// InsightsServiceHandler is implemented by the analytics and budgeting service.
type InsightsServiceHandler interface {
	GetSuggestions(context.Context, *connect.Request[GetSuggestionsRequest]) (*connect.Response[GetSuggestionsResponse], error)
	GenerateBudgets(context.Context, *connect.Request[GenerateBudgetsRequest]) (*connect.Response[GenerateBudgetsResponse], error)
	ListBudgets(context.Context, *connect.Request[ListBudgetsRequest]) (*connect.Response[ListBudgetsResponse], error)
	CreateBudget(context.Context, *connect.Request[CreateBudgetRequest]) (*connect.Response[CreateBudgetResponse], error)
	GetSpendingAnalytics(context.Context, *connect.Request[GetSpendingAnalyticsRequest]) (*connect.Response[GetSpendingAnalyticsResponse], error)
	GetForecast(context.Context, *connect.Request[GetForecastRequest]) (*connect.Response[GetForecastResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler for svc and returns the
// path prefix to mount it on.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(CreateExpenseProcedure, connect.NewUnaryHandler(CreateExpenseProcedure, svc.CreateExpense, opts...))
	mux.Handle(ListExpensesProcedure, connect.NewUnaryHandler(ListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(DeleteExpenseProcedure, connect.NewUnaryHandler(DeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(ScanReceiptProcedure, connect.NewUnaryHandler(ScanReceiptProcedure, svc.ScanReceipt, opts...))
	return "/" + ExpenseServiceName + "/", mux
}

// NewGroupServiceHandler builds an HTTP handler for svc and returns the
// path prefix to mount it on.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(CreateGroupProcedure, connect.NewUnaryHandler(CreateGroupProcedure, svc.CreateGroup, opts...))
	mux.Handle(GetGroupProcedure, connect.NewUnaryHandler(GetGroupProcedure, svc.GetGroup, opts...))
	mux.Handle(ListGroupsProcedure, connect.NewUnaryHandler(ListGroupsProcedure, svc.ListGroups, opts...))
	mux.Handle(CreateGroupExpenseProcedure, connect.NewUnaryHandler(CreateGroupExpenseProcedure, svc.CreateGroupExpense, opts...))
	mux.Handle(ListGroupExpensesProcedure, connect.NewUnaryHandler(ListGroupExpensesProcedure, svc.ListGroupExpenses, opts...))
	mux.Handle(GetGroupBalancesProcedure, connect.NewUnaryHandler(GetGroupBalancesProcedure, svc.GetGroupBalances, opts...))
	return "/" + GroupServiceName + "/", mux
}

// NewInsightsServiceHandler builds an HTTP handler for svc and returns the
// path prefix to mount it on.
func NewInsightsServiceHandler(svc InsightsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(GetSuggestionsProcedure, connect.NewUnaryHandler(GetSuggestionsProcedure, svc.GetSuggestions, opts...))
	mux.Handle(GenerateBudgetsProcedure, connect.NewUnaryHandler(GenerateBudgetsProcedure, svc.GenerateBudgets, opts...))
	mux.Handle(ListBudgetsProcedure, connect.NewUnaryHandler(ListBudgetsProcedure, svc.ListBudgets, opts...))
	mux.Handle(CreateBudgetProcedure, connect.NewUnaryHandler(CreateBudgetProcedure, svc.CreateBudget, opts...))
	mux.Handle(GetSpendingAnalyticsProcedure, connect.NewUnaryHandler(GetSpendingAnalyticsProcedure, svc.GetSpendingAnalytics, opts...))
	mux.Handle(GetForecastProcedure, connect.NewUnaryHandler(GetForecastProcedure, svc.GetForecast, opts...))
	return "/" + InsightsServiceName + "/", mux
}

func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec())}, opts...)
}
