// Package logger builds *slog.Logger values for the validation packages and
// provides attribute helpers that keep key names consistent.
//
// New takes functional options for the level, the output format (text or
// json), the destination, static attributes and ContextExtractor callbacks.
// Extractors run on every record and pull request-scoped values, such as a
// request id, out of the context.Context passed to the *Context logging
// methods.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "signup-api"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "validation failed",
//	    logger.Component("shapehttp"),
//	    logger.InvalidFields(err.Invalid),
//	)
//
// Config carries the same settings in env-tagged form for use with package
// config; FromConfig turns it into a logger.
package logger
