package api

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// Client calls every FinFusion procedure on one server.
type Client struct {
	createExpense        *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	listExpenses         *connect.Client[ListExpensesRequest, ListExpensesResponse]
	deleteExpense        *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	scanReceipt          *connect.Client[ScanReceiptRequest, ReceiptDraft]
	createGroup          *connect.Client[CreateGroupRequest, CreateGroupResponse]
	getGroup             *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups           *connect.Client[ListGroupsRequest, ListGroupsResponse]
	createGroupExpense   *connect.Client[CreateGroupExpenseRequest, CreateGroupExpenseResponse]
	listGroupExpenses    *connect.Client[ListGroupExpensesRequest, ListGroupExpensesResponse]
	getGroupBalances     *connect.Client[GetGroupBalancesRequest, GetGroupBalancesResponse]
	getSuggestions       *connect.Client[GetSuggestionsRequest, GetSuggestionsResponse]
	generateBudgets      *connect.Client[GenerateBudgetsRequest, GenerateBudgetsResponse]
	listBudgets          *connect.Client[ListBudgetsRequest, ListBudgetsResponse]
	createBudget         *connect.Client[CreateBudgetRequest, CreateBudgetResponse]
	getSpendingAnalytics *connect.Client[GetSpendingAnalyticsRequest, GetSpendingAnalyticsResponse]
	getForecast          *connect.Client[GetForecastRequest, GetForecastResponse]
}

// NewClient returns a Client for the server at baseURL.
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec())}, opts...)
	return &Client{
		createExpense:        connect.NewClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL+CreateExpenseProcedure, opts...),
		listExpenses:         connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ListExpensesProcedure, opts...),
		deleteExpense:        connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+DeleteExpenseProcedure, opts...),
		scanReceipt:          connect.NewClient[ScanReceiptRequest, ReceiptDraft](httpClient, baseURL+ScanReceiptProcedure, opts...),
		createGroup:          connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+CreateGroupProcedure, opts...),
		getGroup:             connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+GetGroupProcedure, opts...),
		listGroups:           connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+ListGroupsProcedure, opts...),
		createGroupExpense:   connect.NewClient[CreateGroupExpenseRequest, CreateGroupExpenseResponse](httpClient, baseURL+CreateGroupExpenseProcedure, opts...),
		listGroupExpenses:    connect.NewClient[ListGroupExpensesRequest, ListGroupExpensesResponse](httpClient, baseURL+ListGroupExpensesProcedure, opts...),
		getGroupBalances:     connect.NewClient[GetGroupBalancesRequest, GetGroupBalancesResponse](httpClient, baseURL+GetGroupBalancesProcedure, opts...),
		getSuggestions:       connect.NewClient[GetSuggestionsRequest, GetSuggestionsResponse](httpClient, baseURL+GetSuggestionsProcedure, opts...),
		generateBudgets:      connect.NewClient[GenerateBudgetsRequest, GenerateBudgetsResponse](httpClient, baseURL+GenerateBudgetsProcedure, opts...),
		listBudgets:          connect.NewClient[ListBudgetsRequest, ListBudgetsResponse](httpClient, baseURL+ListBudgetsProcedure, opts...),
		createBudget:         connect.NewClient[CreateBudgetRequest, CreateBudgetResponse](httpClient, baseURL+CreateBudgetProcedure, opts...),
		getSpendingAnalytics: connect.NewClient[GetSpendingAnalyticsRequest, GetSpendingAnalyticsResponse](httpClient, baseURL+GetSpendingAnalyticsProcedure, opts...),
		getForecast:          connect.NewClient[GetForecastRequest, GetForecastResponse](httpClient, baseURL+GetForecastProcedure, opts...),
	}
}

func (c *Client) CreateExpense(ctx context.Context, req *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *Client) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *Client) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *Client) ScanReceipt(ctx context.Context, req *connect.Request[ScanReceiptRequest]) (*connect.Response[ReceiptDraft], error) {
	return c.scanReceipt.CallUnary(ctx, req)
}

func (c *Client) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *Client) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *Client) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *Client) CreateGroupExpense(ctx context.Context, req *connect.Request[CreateGroupExpenseRequest]) (*connect.Response[CreateGroupExpenseResponse], error) {
	return c.createGroupExpense.CallUnary(ctx, req)
}

func (c *Client) ListGroupExpenses(ctx context.Context, req *connect.Request[ListGroupExpensesRequest]) (*connect.Response[ListGroupExpensesResponse], error) {
	return c.listGroupExpenses.CallUnary(ctx, req)
}

func (c *Client) GetGroupBalances(ctx context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

func (c *Client) GetSuggestions(ctx context.Context, req *connect.Request[GetSuggestionsRequest]) (*connect.Response[GetSuggestionsResponse], error) {
	return c.getSuggestions.CallUnary(ctx, req)
}

func (c *Client) GenerateBudgets(ctx context.Context, req *connect.Request[GenerateBudgetsRequest]) (*connect.Response[GenerateBudgetsResponse], error) {
	return c.generateBudgets.CallUnary(ctx, req)
}

func (c *Client) ListBudgets(ctx context.Context, req *connect.Request[ListBudgetsRequest]) (*connect.Response[ListBudgetsResponse], error) {
	return c.listBudgets.CallUnary(ctx, req)
}

func (c *Client) CreateBudget(ctx context.Context, req *connect.Request[CreateBudgetRequest]) (*connect.Response[CreateBudgetResponse], error) {
	return c.createBudget.CallUnary(ctx, req)
}

func (c *Client) GetSpendingAnalytics(ctx context.Context, req *connect.Request[GetSpendingAnalyticsRequest]) (*connect.Response[GetSpendingAnalyticsResponse], error) {
	return c.getSpendingAnalytics.CallUnary(ctx, req)
}

func (c *Client) GetForecast(ctx context.Context, req *connect.Request[GetForecastRequest]) (*connect.Response[GetForecastResponse], error) {
	return c.getForecast.CallUnary(ctx, req)
}
