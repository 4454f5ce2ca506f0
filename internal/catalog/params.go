package catalog

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// Params gives factories read access to a component's parameters and
// remembers which ones were read, so typos in authored data are reported
// instead of silently ignored.
type Params struct {
	values map[string]float64
	used   map[string]struct{}
}

func newParams(values map[string]float64) *Params {
	return &Params{values: values, used: make(map[string]struct{})}
}

// Float returns the named parameter, or def when it is absent
func (p *Params) Float(name string, def float64) float64 {
	p.used[name] = struct{}{}
	if v, ok := p.values[name]; ok {
		return v
	}
	return def
}

// Bool returns the named flag, or def when it is absent. Any nonzero value is
// true.
func (p *Params) Bool(name string, def bool) bool {
	p.used[name] = struct{}{}
	if v, ok := p.values[name]; ok {
		return v != 0
	}
	return def
}

// Has reports whether the named parameter was authored
func (p *Params) Has(name string) bool {
	p.used[name] = struct{}{}
	_, ok := p.values[name]
	return ok
}

func (p *Params) checkUnused(variant string) error {
	var unknown []string
	for name := range p.values {
		if _, ok := p.used[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return errors.Validationf("unknown parameters for %s: %s", variant, strings.Join(unknown, ", ")).
		WithMeta("variant", variant)
}
