package transform

import (
	"errors"
	"testing"
)

const listScript = `
register{
	name = "core/list",
	prefix = "*",
	build = function(content)
		return {
			name = "core/list",
			attributes = '{"ordered":false}',
			content = content,
		}
	end,
}

register{
	name = "core/separator",
	pattern = "^---+$",
	build = function(content)
		return { name = "core/separator" }
	end,
}
`

func TestLoadScript(t *testing.T) {
	s, err := LoadScript(listScript)
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}
	defer s.Close()

	transforms := s.Transforms()
	if len(transforms) != 2 {
		t.Fatalf("expected 2 transforms, got %d", len(transforms))
	}

	list := transforms[0]
	if list.Kind != KindPrefix || list.Prefix != "*" {
		t.Errorf("expected prefix transform on *, got kind=%v prefix=%q", list.Kind, list.Prefix)
	}

	sep := transforms[1]
	if sep.Kind != KindEnter || sep.Pattern == nil {
		t.Fatalf("expected enter transform with pattern, got kind=%v", sep.Kind)
	}
	if !sep.Pattern.MatchString("----") {
		t.Error("pattern should match ----")
	}
}

func TestLuaBuilder(t *testing.T) {
	s, err := LoadScript(listScript)
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}
	defer s.Close()

	list := s.Transforms()[0]
	p, err := list.Build("<li>item</li>")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if p.Name != "core/list" {
		t.Errorf("expected block name core/list, got %q", p.Name)
	}
	if p.InnerHTML != "<li>item</li>" {
		t.Errorf("expected content to round-trip, got %q", p.InnerHTML)
	}
	if p.Attribute("ordered").Bool() {
		t.Error("expected ordered=false attribute")
	}
	if p.ClientID == "" {
		t.Error("expected a generated client ID")
	}
}

func TestLuaBuilderAfterClose(t *testing.T) {
	s, err := LoadScript(listScript)
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}
	list := s.Transforms()[0]
	s.Close()

	if _, err := list.Build("x"); !errors.Is(err, ErrScriptClosed) {
		t.Errorf("expected ErrScriptClosed, got %v", err)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript(`register{ name = "x" }`); err == nil {
		t.Error("expected error for transform without build function")
	}
	if _, err := LoadScript(`this is not lua`); err == nil {
		t.Error("expected error for invalid script")
	}
	if _, err := LoadScript(`register{ name = "x", build = function() end }`); err == nil {
		t.Error("expected error for transform without trigger")
	}
}

func TestAddTo(t *testing.T) {
	s, err := LoadScript(listScript)
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}
	defer s.Close()

	r := &Registry{}
	if err := s.AddTo(r); err != nil {
		t.Fatalf("AddTo failed: %v", err)
	}
	if _, ok := r.MatchPrefix("*"); !ok {
		t.Error("expected script transform to be registered")
	}
}
