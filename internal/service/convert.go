package service

import (
	"github.com/marilyndevx/FinFusion-V1/internal/models"
	"github.com/marilyndevx/FinFusion-V1/internal/settlement"
	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

func toAPIExpense(e *models.Expense) api.Expense {
	return api.Expense{
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        models.FormatDate(e.Date),
		CreatedAt:   e.CreatedAt,
	}
}

func toAPIGroup(g *models.Group) api.Group {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return api.Group{
		ID:        g.ID,
		Name:      g.Name,
		Members:   members,
		CreatedAt: g.CreatedAt,
	}
}

func toAPIGroupExpense(e *models.GroupExpense) api.GroupExpense {
	splits := e.Splits
	if splits == nil {
		splits = map[string]float64{}
	}
	return api.GroupExpense{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		PaidBy:      e.PaidBy,
		SplitType:   string(e.SplitKind),
		Splits:      splits,
		Date:        models.FormatDate(e.Date),
		CreatedAt:   e.CreatedAt,
	}
}

func toAPIBudget(b *models.Budget) api.Budget {
	return api.Budget{
		ID:               b.ID,
		Category:         b.Category,
		Limit:            b.Limit,
		Period:           b.Period,
		AIRecommendation: b.AIRecommended,
		CreatedAt:        b.CreatedAt,
	}
}

func toAPISettlements(transfers []settlement.Transfer) []api.Settlement {
	out := make([]api.Settlement, len(transfers))
	for i, t := range transfers {
		out[i] = api.Settlement{From: t.From, To: t.To, Amount: t.Amount}
	}
	return out
}
