// Package logging wraps log/slog with the helpers the browse service
// logs through: JSON or text handlers with env-controlled levels,
// request ID propagation, and context-carried loggers.
//
// Example usage:
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("server starting", slog.String("addr", ":8080"))
//	}
//
//	func handleRequest(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("browse advanced", slog.Int("page", 3))
//	}
package logging
