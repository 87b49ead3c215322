package contexthelpers

import (
	"context"
)

// DraftID returns the drafting session bound to the request or "" when there is none.
func DraftID(ctx context.Context) string {
	draftID, ok := ctx.Value(draftIDContextKey).(string)
	if !ok {
		return ""
	}

	return draftID
}

func CSRFToken(ctx context.Context) string {
	csrfToken, ok := ctx.Value(csrfTokenContextKey).(string)
	if !ok {
		return ""
	}

	return csrfToken
}

func RequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	if !ok {
		return ""
	}

	return requestID
}
