package lr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lr0gen.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lr0gen.lr")
}
