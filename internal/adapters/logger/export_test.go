package logger

// Unexported error formatting, exported for tests.
var (
	CollectMessages = collectMessages
	FormatChain     = formatChain
)
