// Package logging provides structured logging for orgchart.
//
// It wraps Go's log/slog with a JSON handler and adds child loggers that
// carry persistent attributes such as the component name or the employee an
// operation concerns.
//
// # Basic Usage
//
//	logger := logging.NewLogger(os.Stderr, "INFO")
//	logger.Info("report added", "lead_id", 1, "employee_id", 2)
//
//	leadLog := logger.WithComponent("org").WithEmployee(1)
//	leadLog.Debug("headcount exhausted", "limit", 4)
//
// Use [NopLogger] in tests or wherever logging is disabled.
package logging
