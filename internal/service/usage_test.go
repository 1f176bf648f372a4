package service

import (
	"testing"

	"github.com/set-night/mindfulchat/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCost(t *testing.T) {
	prompt := decimal.RequireFromString("0.59")
	completion := decimal.RequireFromString("0.79")

	cost := CalculateCost(domain.TokenUsage{PromptTokens: 1000, CompletionTokens: 500}, prompt, completion)

	// 1000/1M * 0.59 + 500/1M * 0.79
	assert.True(t, cost.Equal(decimal.RequireFromString("0.000985")), "got %s", cost)
}

func TestCalculateCostZeroUsage(t *testing.T) {
	prompt, completion := DefaultPricing()

	cost := CalculateCost(domain.TokenUsage{}, prompt, completion)

	assert.True(t, cost.IsZero())
}

func TestUsageStatsAdd(t *testing.T) {
	var stats domain.UsageStats

	stats.Add(domain.TokenUsage{PromptTokens: 100, CompletionTokens: 50}, decimal.RequireFromString("0.001"))
	stats.Add(domain.TokenUsage{PromptTokens: 200, CompletionTokens: 75}, decimal.RequireFromString("0.002"))

	assert.Equal(t, int64(300), stats.PromptTokens)
	assert.Equal(t, int64(125), stats.CompletionTokens)
	require.True(t, stats.EstimatedCost.Equal(decimal.RequireFromString("0.003")))
}
