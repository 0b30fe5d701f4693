package response

const (
	// DefaultStackTraceDepth bounds the frames captured for error reports.
	DefaultStackTraceDepth = 32
	// DefaultErrorMessage is the client-facing message for unclassified errors.
	DefaultErrorMessage = "Something went wrong"
	// MessageSuccess is the envelope message for successful responses.
	MessageSuccess = "Success"
	// InternalServerErrorCode is the envelope error code for unclassified errors.
	InternalServerErrorCode = 500
	// DiscordMaxMessageLen is the chunk size for webhook error reports.
	DiscordMaxMessageLen = 2000
)
