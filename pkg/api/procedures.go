package api

const (
	ExpenseServiceName  = "finfusion.v1.ExpenseService"
	GroupServiceName    = "finfusion.v1.GroupService"
	InsightsServiceName = "finfusion.v1.InsightsService"
)

const (
	CreateExpenseProcedure = "/" + ExpenseServiceName + "/CreateExpense"
	ListExpensesProcedure  = "/" + ExpenseServiceName + "/ListExpenses"
	DeleteExpenseProcedure = "/" + ExpenseServiceName + "/DeleteExpense"
	ScanReceiptProcedure   = "/" + ExpenseServiceName + "/ScanReceipt"

	CreateGroupProcedure        = "/" + GroupServiceName + "/CreateGroup"
	GetGroupProcedure           = "/" + GroupServiceName + "/GetGroup"
	ListGroupsProcedure         = "/" + GroupServiceName + "/ListGroups"
	CreateGroupExpenseProcedure = "/" + GroupServiceName + "/CreateGroupExpense"
	ListGroupExpensesProcedure  = "/" + GroupServiceName + "/ListGroupExpenses"
	GetGroupBalancesProcedure   = "/" + GroupServiceName + "/GetGroupBalances"

	GetSuggestionsProcedure       = "/" + InsightsServiceName + "/GetSuggestions"
	GenerateBudgetsProcedure      = "/" + InsightsServiceName + "/GenerateBudgets"
	ListBudgetsProcedure          = "/" + InsightsServiceName + "/ListBudgets"
	CreateBudgetProcedure         = "/" + InsightsServiceName + "/CreateBudget"
	GetSpendingAnalyticsProcedure = "/" + InsightsServiceName + "/GetSpendingAnalytics"
	GetForecastProcedure          = "/" + InsightsServiceName + "/GetForecast"
)
