// Package validate checks a core.Graph for the two data-quality invariants the
// route searches rely on: endpoint closure (declared nodes == edge endpoints)
// and reachability of every declared node from a root.
//
// Validation is advisory. Validate returns a Report, never an error, for a bad
// graph; the caller decides whether to proceed. Report implements slog.LogValuer:
//
//	rep, _ := validate.Validate(g, "Town")
//	if !rep.OK() {
//		logger.Warn("graph failed validation", "report", rep)
//	}
package validate
