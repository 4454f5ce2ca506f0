package spell

import "reflect"

// Augment mutates a context before targeting. Augments must only write to the
// context they are given; the same augment value is shared by every cast of a
// definition.
type Augment interface {
	Modify(ctx *Context)
}

// IncreasePower multiplies the cast power.
type IncreasePower struct {
	Multiplier float64
}

// NewIncreasePower returns the augment with its default x1.5 multiplier
func NewIncreasePower() *IncreasePower {
	return &IncreasePower{Multiplier: 1.5}
}

func (a *IncreasePower) Modify(ctx *Context) {
	ctx.Power *= a.Multiplier
}

// IncreaseRange adds a flat amount to the cast range.
type IncreaseRange struct {
	ExtraRange float64
}

// NewIncreaseRange returns the augment with its default +5 range
func NewIncreaseRange() *IncreaseRange {
	return &IncreaseRange{ExtraRange: 5}
}

func (a *IncreaseRange) Modify(ctx *Context) {
	ctx.Range += a.ExtraRange
}

// applyAugments runs each augment over ctx in list order. Nil entries,
// including typed nil pointers, are skipped.
func applyAugments(ctx *Context, augments []Augment) {
	for _, a := range augments {
		if isNil(a) {
			continue
		}
		a.Modify(ctx)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
