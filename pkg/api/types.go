package api

// Dates are "YYYY-MM-DD" strings; timestamps are Unix seconds.

type Expense struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   int64   `json:"created_at"`
}

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct {
	Message string `json:"message"`
}

type ScanReceiptRequest struct {
	// Image is the raw upload; base64 in JSON.
	Image []byte `json:"image"`
}

// ReceiptDraft is a best guess; submit it through CreateExpense to save it.
type ReceiptDraft struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []string `json:"members"`
	CreatedAt int64    `json:"created_at"`
}

type CreateGroupRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type CreateGroupResponse struct {
	Group Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []Group `json:"groups"`
}

type GroupExpense struct {
	ID          string             `json:"id"`
	GroupID     string             `json:"group_id"`
	Amount      float64            `json:"amount"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	PaidBy      string             `json:"paid_by"`
	SplitType   string             `json:"split_type"`
	Splits      map[string]float64 `json:"splits"`
	Date        string             `json:"date"`
	CreatedAt   int64              `json:"created_at"`
}

type CreateGroupExpenseRequest struct {
	GroupID     string  `json:"group_id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	PaidBy      string  `json:"paid_by"`
	// SplitType is "equal" or "custom".
	SplitType string `json:"split_type"`
	// Splits is only read for custom splits.
	Splits map[string]float64 `json:"splits,omitempty"`
	Date   string             `json:"date"`
}

type CreateGroupExpenseResponse struct {
	Expense GroupExpense `json:"expense"`
}

type ListGroupExpensesRequest struct {
	GroupID string `json:"group_id"`
}

type ListGroupExpensesResponse struct {
	Expenses []GroupExpense `json:"expenses"`
}

type GetGroupBalancesRequest struct {
	GroupID string `json:"group_id"`
}

type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type GetGroupBalancesResponse struct {
	// Balances is positive when the group owes the member.
	Balances    map[string]float64 `json:"balances"`
	Settlements []Settlement       `json:"settlements"`
}

type GetSuggestionsRequest struct{}

type GetSuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type Budget struct {
	ID               string  `json:"id"`
	Category         string  `json:"category"`
	Limit            float64 `json:"limit"`
	Period           string  `json:"period"`
	AIRecommendation bool    `json:"ai_recommendation"`
	CreatedAt        int64   `json:"created_at"`
}

type GenerateBudgetsRequest struct{}

type GenerateBudgetsResponse struct {
	Budgets []Budget `json:"budgets"`
}

type ListBudgetsRequest struct{}

type ListBudgetsResponse struct {
	Budgets []Budget `json:"budgets"`
}

type CreateBudgetRequest struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Period   string  `json:"period,omitempty"`
}

type CreateBudgetResponse struct {
	Budget Budget `json:"budget"`
}

type GetSpendingAnalyticsRequest struct{}

type CategorySpending struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type GetSpendingAnalyticsResponse struct {
	TotalMonthly float64            `json:"total_monthly"`
	ByCategory   []CategorySpending `json:"by_category"`
}

type GetForecastRequest struct{}

type ForecastPoint struct {
	Date            string  `json:"date"`
	PredictedAmount float64 `json:"predicted_amount"`
}

type GetForecastResponse struct {
	Forecast []ForecastPoint `json:"forecast"`
	// Trend is increasing, decreasing, stable, insufficient_data or error.
	Trend string  `json:"trend"`
	Slope float64 `json:"slope"`
}
