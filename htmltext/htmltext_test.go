package htmltext

import (
	"testing"

	"github.com/ethitter/gutenberg/richtext"
)

func TestParsePlainText(t *testing.T) {
	v, err := Parse("hello", "", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", v.String())
	}
	for i := range v.Formats {
		if len(v.Formats[i]) != 0 {
			t.Errorf("char %d should be unformatted, got %v", i, v.Formats[i])
		}
	}
	if err := v.Validate(); err != nil {
		t.Errorf("parsed value failed validation: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	v, err := Parse("a<strong>b<em>c</em></strong>d", "", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.String() != "abcd" {
		t.Fatalf("expected %q, got %q", "abcd", v.String())
	}
	if len(v.Formats[0]) != 0 {
		t.Errorf("a should be unformatted, got %v", v.Formats[0])
	}
	if len(v.Formats[1]) != 1 || v.Formats[1][0].Type != "strong" {
		t.Errorf("b should be strong, got %v", v.Formats[1])
	}
	// Nesting becomes a stack, outermost first.
	if len(v.Formats[2]) != 2 || v.Formats[2][0].Type != "strong" || v.Formats[2][1].Type != "em" {
		t.Errorf("c should be strong>em, got %v", v.Formats[2])
	}
	if len(v.Formats[3]) != 0 {
		t.Errorf("d should be unformatted, got %v", v.Formats[3])
	}
}

func TestParseAttributes(t *testing.T) {
	v, err := Parse(`<a href="https://example.com">x</a>`, "", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	f := v.Formats[0][0]
	if f.Type != "a" {
		t.Fatalf("expected a format, got %q", f.Type)
	}
	if href, ok := f.Attribute("href"); !ok || href != "https://example.com" {
		t.Errorf("expected href attribute, got %q %v", href, ok)
	}
}

func TestParseBr(t *testing.T) {
	v, err := Parse("a<br>b", "", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.String() != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", v.String())
	}
}

func TestParseMultiline(t *testing.T) {
	v, err := Parse("<li>one</li>\n<li>two</li>", "li", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sep := string(rune(richtext.LineSeparator))
	if v.String() != "one"+sep+"two" {
		t.Errorf("expected separator-joined segments, got %q", v.String())
	}
	if v.MultilineTag != "li" {
		t.Errorf("expected multiline tag carried, got %q", v.MultilineTag)
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	v, err := Parse("a  \n\t b", "", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.String() != "a b" {
		t.Errorf("expected collapsed whitespace, got %q", v.String())
	}

	v, err = Parse("a  b", "", true)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.String() != "a  b" {
		t.Errorf("expected preserved whitespace, got %q", v.String())
	}
}

func TestSerializeFormats(t *testing.T) {
	v, err := Parse("a<strong>b<em>c</em></strong>d", "", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, err := Serialize(v, "")
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if out != "a<strong>b<em>c</em></strong>d" {
		t.Errorf("round trip produced %q", out)
	}
}

func TestSerializeMultiline(t *testing.T) {
	sep := string(rune(richtext.LineSeparator))
	v := richtext.FromString("one" + sep + "two")
	out, err := Serialize(v, "li")
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if out != "<li>one</li><li>two</li>" {
		t.Errorf("expected wrapped segments, got %q", out)
	}
}

func TestSerializeBrAndEscapes(t *testing.T) {
	v := richtext.FromString("a\nb<c")
	out, err := Serialize(v, "")
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if out != "a<br>b&lt;c" {
		t.Errorf("expected escaped output, got %q", out)
	}
}

func TestSerializeAttributes(t *testing.T) {
	v, err := Parse(`<a href="https://example.com" rel="noopener">x</a>`, "", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, err := Serialize(v, "")
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	// Attributes come out sorted by name.
	want := `<a href="https://example.com" rel="noopener">x</a>`
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestSerializeRejectsMalformed(t *testing.T) {
	v := richtext.FromString("ab")
	v.Formats = v.Formats[:1]
	if _, err := Serialize(v, ""); err == nil {
		t.Error("expected error for malformed value")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	var c Codec
	v, err := c.Parse("<em>x</em>", "", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, err := c.Serialize(v, "")
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if out != "<em>x</em>" {
		t.Errorf("round trip produced %q", out)
	}
}
