package render

// SkipHandler is called once for each code a sink could not render.
// Skips are non-fatal: the sink continues with the remaining codes.
type SkipHandler func(code string, err error)

// ignoreSkip is the default handler.
func ignoreSkip(string, error) {}
