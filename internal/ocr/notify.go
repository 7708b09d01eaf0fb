package ocr

import "context"

type engageNotifyKey struct{}

// WithEngageNotify returns a context whose extraction calls invoke fn the
// moment the OCR fallback engages. Workers use this to surface the
// OCR_RUNNING status while a job is mid-flight.
func WithEngageNotify(ctx context.Context, fn func()) context.Context {
	return context.WithValue(ctx, engageNotifyKey{}, fn)
}

func notifyEngage(ctx context.Context) {
	if fn, ok := ctx.Value(engageNotifyKey{}).(func()); ok && fn != nil {
		fn()
	}
}
