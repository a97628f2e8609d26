package constants

// Context and session keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
	SessionCookieName   = "board_session"
	SessionKeyUserID    = "current_user_id"
)

// HTTP headers
const (
	HeaderCurrentUserID = "X-Current-User-ID"
	HeaderRequestID     = "X-Request-ID"
)

// Project defaults
const (
	DefaultProjectPriority = 2
	DefaultProjectStatus   = "active"
)

// MaxSuggestedTasks caps how many task suggestions are accepted from the AI service
const MaxSuggestedTasks = 20
