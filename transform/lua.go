package transform

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/ethitter/gutenberg/block"
)

// Errors returned by script-defined transforms.
var (
	ErrScriptClosed = errors.New("transform script is closed")
	ErrBadResult    = errors.New("build function must return a table with a name")
)

// Script hosts transforms defined in Lua. The script declares transforms by
// calling the injected `register` function:
//
//	register{
//	    name = "core/list",
//	    prefix = "*",
//	    build = function(content)
//	        return { name = "core/list", content = content }
//	    end,
//	}
//
// An enter transform sets `pattern` (a Go regular expression matched
// against the value's plain text) instead of `prefix`. The build function receives
// the matched content and returns a table with `name`, optional JSON
// `attributes`, and optional `content`.
//
// The Lua state is not goroutine-safe; Script serializes all build calls
// behind a mutex. Only the base, table, string and math libraries are
// opened, so scripts cannot reach the file system or spawn processes.
type Script struct {
	mu         sync.Mutex
	state      *lua.LState
	transforms []Transform
	closed     bool
}

// LoadScript compiles and runs a transform script, collecting the
// transforms it registers.
func LoadScript(source string) (*Script, error) {
	state := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := state.CallByParam(lua.P{
			Fn:      state.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			state.Close()
			return nil, fmt.Errorf("opening lua %s library: %w", lib.name, err)
		}
	}

	s := &Script{state: state}
	state.SetGlobal("register", state.NewFunction(s.register))

	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, fmt.Errorf("running transform script: %w", err)
	}
	return s, nil
}

// Transforms returns the transforms the script registered, in registration
// order.
func (s *Script) Transforms() []Transform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Transform(nil), s.transforms...)
}

// AddTo registers every script transform into the registry.
func (s *Script) AddTo(r *Registry) error {
	for _, t := range s.Transforms() {
		if err := r.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the Lua state. Builders of transforms created by this
// script fail with ErrScriptClosed afterwards.
func (s *Script) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.state.Close()
}

// register implements the Lua `register` function.
func (s *Script) register(L *lua.LState) int {
	tbl := L.CheckTable(1)

	name := lua.LVAsString(tbl.RawGetString("name"))
	prefix := lua.LVAsString(tbl.RawGetString("prefix"))
	pattern := lua.LVAsString(tbl.RawGetString("pattern"))

	fn, ok := tbl.RawGetString("build").(*lua.LFunction)
	if !ok {
		L.ArgError(1, "build must be a function")
		return 0
	}

	t := Transform{Name: name, Build: s.builder(fn)}
	switch {
	case prefix != "" && pattern != "":
		L.ArgError(1, "prefix and pattern are mutually exclusive")
		return 0
	case prefix != "":
		t.Kind = KindPrefix
		t.Prefix = prefix
	case pattern != "":
		re, err := regexp.Compile(pattern)
		if err != nil {
			L.ArgError(1, "invalid pattern: "+err.Error())
			return 0
		}
		t.Kind = KindEnter
		t.Pattern = re
	default:
		L.ArgError(1, "prefix or pattern required")
		return 0
	}

	if err := t.validate(); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	s.mu.Lock()
	s.transforms = append(s.transforms, t)
	s.mu.Unlock()
	return 0
}

// builder wraps a Lua build function as a Builder.
func (s *Script) builder(fn *lua.LFunction) Builder {
	return func(content string) (block.Payload, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return block.Payload{}, ErrScriptClosed
		}

		if err := s.state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, lua.LString(content)); err != nil {
			return block.Payload{}, fmt.Errorf("transform build: %w", err)
		}
		ret := s.state.Get(-1)
		s.state.Pop(1)

		tbl, ok := ret.(*lua.LTable)
		if !ok {
			return block.Payload{}, ErrBadResult
		}
		name := lua.LVAsString(tbl.RawGetString("name"))
		if name == "" {
			return block.Payload{}, ErrBadResult
		}
		var attrs json.RawMessage
		if a := lua.LVAsString(tbl.RawGetString("attributes")); a != "" {
			if !json.Valid([]byte(a)) {
				return block.Payload{}, fmt.Errorf("transform build: attributes is not valid JSON")
			}
			attrs = json.RawMessage(a)
		}
		inner := lua.LVAsString(tbl.RawGetString("content"))
		return block.New(name, attrs, inner), nil
	}
}
