package config

import "time"

const (
	// Generation parameters sent with every completion request
	MaxTokens   = 500
	Temperature = 0.7
	TopP        = 0.9

	// Trailing window of session messages included in the request context
	ContextWindow = 20

	// Named slot holding the serialized application state
	StateSlot = "mindfulchat_data"

	// Model cache duration
	ModelCacheDuration = 1 * time.Hour

	// Pricing for the default model, USD per 1M tokens
	PromptPricePerMTok     = "0.59"
	CompletionPricePerMTok = "0.79"
)
