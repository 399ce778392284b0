package service

const (
	// DefaultModel is used when Options.Model is empty.
	DefaultModel = "gpt-3.5-turbo"

	// DefaultMaxTokens bounds the completion length when Options.MaxTokens is unset.
	DefaultMaxTokens = 2000

	opGenerate = "generate_proposal"
)
