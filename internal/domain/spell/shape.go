package spell

// Shape turns a prepared context into zero or more targets and hands each to
// the effect. Shapes hold configuration only.
type Shape interface {
	Execute(ctx *Context, effect Effect)
}
