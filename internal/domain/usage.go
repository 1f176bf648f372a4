package domain

import "github.com/shopspring/decimal"

// TokenUsage is the token accounting for one completion.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
}

// UsageStats accumulates token usage and estimated spend across turns.
type UsageStats struct {
	PromptTokens     int64           `json:"prompt_tokens"`
	CompletionTokens int64           `json:"completion_tokens"`
	EstimatedCost    decimal.Decimal `json:"estimated_cost"`
}

// Add folds one completion's usage into the totals.
func (u *UsageStats) Add(t TokenUsage, cost decimal.Decimal) {
	u.PromptTokens += int64(t.PromptTokens)
	u.CompletionTokens += int64(t.CompletionTokens)
	u.EstimatedCost = u.EstimatedCost.Add(cost)
}
