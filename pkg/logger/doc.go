// Package logger builds the *slog.Logger used as the diagnostics sink of the
// validation engine, with functional options for configuration, helper
// attribute constructors and transparent injection of values stored in
// context.Context.
//
// Diagnostics are the second output channel of validation: they report
// caller misuse such as a schema field that the validated object does not
// have, an empty field path or a rule built with a degenerate bound. They are
// never validation failures and never abort a validation pass.
//
// # Architecture
//
// New determines the concrete slog.Handler implementation,
// slog.NewTextHandler or slog.NewJSONHandler, based on the configured
// Format. It then wraps the handler with LogHandlerDecorator which runs any
// registered ContextExtractor callbacks before delegating to the underlying
// handler, so request scoped values reach diagnostics emitted through
// ValidateObjectContext.
//
// Attribute helpers such as Field, Path, Rule and Error live in attr.go and
// keep attribute naming consistent across diagnostics.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	v := validator.New(validator.WithLogger(log))
//
// Use Discard for a logger that drops everything.
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel / WithLevelString – minimum level.
//   - WithOutput – destination writer.
//   - WithAttr / WithComponent – static attributes.
//   - WithContextExtractors / WithContextValue – attributes from context.
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so
//
//	log.Warn("rule skipped", logger.Error(err))
//
// needs no nil check. WithFormat panics on an unknown format: a
// misconfigured logger should fail at startup.
package logger
