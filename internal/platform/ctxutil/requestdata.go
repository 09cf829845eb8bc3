package ctxutil

import "context"

type requestDataKey struct{}

// RequestData carries the verified reviewer identity for the current request.
// Authentication itself happens upstream; the core only consumes the result.
type RequestData struct {
	ExpertEmail string
	Role        string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if ctx == nil {
		return nil
	}
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}
