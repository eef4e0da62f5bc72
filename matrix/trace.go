package matrix

import "log/slog"

// Traced returns a pass-through function wrapper that logs every build
// invocation and its outcome. Attach it with Builder.Map to observe matrix
// expansion without changing build behavior.
func Traced(logger *slog.Logger) FuncWrapper {
	return func(fn BuildFunc) BuildFunc {
		return func(c Combination) (any, error) {
			logger.Debug("building matrix entry", "combination", c.String())
			v, err := fn(c)
			if err != nil {
				logger.Error("matrix entry failed", "combination", c.String(), "error", err)
				return nil, err
			}
			return v, nil
		}
	}
}
