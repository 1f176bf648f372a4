package service

import (
	"github.com/set-night/mindfulchat/internal/config"
	"github.com/set-night/mindfulchat/internal/domain"
	"github.com/shopspring/decimal"
)

var million = decimal.NewFromInt(1_000_000)

// CalculateCost prices one completion at USD-per-1M-token rates.
func CalculateCost(u domain.TokenUsage, promptPrice, completionPrice decimal.Decimal) decimal.Decimal {
	prompt := decimal.NewFromInt(int64(u.PromptTokens)).Mul(promptPrice).Div(million)
	completion := decimal.NewFromInt(int64(u.CompletionTokens)).Mul(completionPrice).Div(million)
	return prompt.Add(completion)
}

// DefaultPricing returns the configured per-1M-token prices for the default
// model.
func DefaultPricing() (prompt, completion decimal.Decimal) {
	return decimal.RequireFromString(config.PromptPricePerMTok),
		decimal.RequireFromString(config.CompletionPricePerMTok)
}
