package contexthelpers

type contextKey string

const (
	draftIDContextKey   = contextKey("draftID")
	csrfTokenContextKey = contextKey("csrfToken")
	requestIDContextKey = contextKey("requestID")
)
