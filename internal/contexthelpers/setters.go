package contexthelpers

import (
	"context"
	"net/http"
)

func WithDraftID(r *http.Request, draftID string) *http.Request {
	ctx := context.WithValue(r.Context(), draftIDContextKey, draftID)
	return r.WithContext(ctx)
}

func WithCSRFToken(r *http.Request, csrfToken string) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenContextKey, csrfToken)
	return r.WithContext(ctx)
}

func WithRequestID(r *http.Request, requestID string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
	return r.WithContext(ctx)
}
