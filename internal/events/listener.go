package events

// FuncListener adapts a function to EventListener
type FuncListener struct {
	ListenerID string
	Order      int
	Fn         func(Event) error
}

// NewFuncListener creates a listener that calls fn
func NewFuncListener(id string, priority int, fn func(Event) error) *FuncListener {
	return &FuncListener{ListenerID: id, Order: priority, Fn: fn}
}

func (l *FuncListener) ID() string    { return l.ListenerID }
func (l *FuncListener) Priority() int { return l.Order }

func (l *FuncListener) HandleEvent(e Event) error {
	if l.Fn == nil {
		return nil
	}
	return l.Fn(e)
}
