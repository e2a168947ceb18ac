package ini

import "log/slog"

type decodeOptions struct {
	logger          *slog.Logger
	disallowUnknown bool
	allowTrailing   bool
}

// DecodeOption configures [Unmarshal] and [NewDecoder].
type DecodeOption func(*decodeOptions)

// WithLogger sends debug records about section resolution and pair runs
// to l. A nil logger disables logging, which is the default.
func WithLogger(l *slog.Logger) DecodeOption {
	return func(o *decodeOptions) { o.logger = l }
}

// DisallowUnknownFields makes decoding into a struct fail with
// [ErrUnknownField] when a key has no matching field.
func DisallowUnknownFields() DecodeOption {
	return func(o *decodeOptions) { o.disallowUnknown = true }
}

// AllowTrailingInput lets a top-level map decode succeed when sections
// follow the leading key-value pairs.
func AllowTrailingInput() DecodeOption {
	return func(o *decodeOptions) { o.allowTrailing = true }
}

func newDecodeOptions(opts []DecodeOption) *decodeOptions {
	o := &decodeOptions{}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *decodeOptions) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

type encodeOptions struct {
	logger *slog.Logger
}

// EncodeOption configures [Marshal] and [NewEncoder].
type EncodeOption func(*encodeOptions)

// EncodeLogger sends debug records about emitted records to l.
func EncodeLogger(l *slog.Logger) EncodeOption {
	return func(o *encodeOptions) { o.logger = l }
}

func newEncodeOptions(opts []EncodeOption) *encodeOptions {
	o := &encodeOptions{}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *encodeOptions) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}
