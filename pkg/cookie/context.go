package cookie

import "context"

type contextKey struct{}

func WithContext(ctx context.Context, c *Codec) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

func FromContext(ctx context.Context) (*Codec, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(contextKey{}).(*Codec)
	return c, ok && c != nil
}
