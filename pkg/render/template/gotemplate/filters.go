package gotemplate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// filterMu serialises registration into pongo2's process-wide filter table.
var filterMu sync.Mutex

func registerFilterOnce(name string, fn pongo2.FilterFunction) error {
	filterMu.Lock()
	defer filterMu.Unlock()
	if pongo2.FilterExists(name) {
		return nil
	}
	return pongo2.RegisterFilter(name, fn)
}

func adaptFilter(fn func(input any, param any) (any, error)) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
}

// registerFunc installs fn as a filter when it has a filter signature and as
// a callable global otherwise.
func (e *Engine) registerFunc(name string, fn any) error {
	if name == "" || fn == nil {
		return nil
	}
	switch f := fn.(type) {
	case pongo2.FilterFunction:
		return registerFilterOnce(name, f)
	case func(*pongo2.Value, *pongo2.Value) (*pongo2.Value, *pongo2.Error):
		return registerFilterOnce(name, f)
	case func(input any, param any) (any, error):
		return registerFilterOnce(name, adaptFilter(f))
	}

	if reflect.ValueOf(fn).Kind() != reflect.Func {
		return fmt.Errorf("%T is not a function", fn)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals[name] = fn
	return nil
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
