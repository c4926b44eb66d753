package edit

import (
	"strings"
	"testing"

	"github.com/ethitter/gutenberg/block"
	"github.com/ethitter/gutenberg/config"
	"github.com/ethitter/gutenberg/richtext"
)

func TestPasteEmptyPayload(t *testing.T) {
	c, clip := newController(t)
	v := richtext.FromString("ab")

	res := c.Paste(v, PasteIntent{}, Capabilities{})
	if res.Kind != KindNoOp {
		t.Errorf("expected no-op for empty payload, got %v", res.Kind)
	}
	if clip.lastReq != nil {
		t.Error("clipboard parser should not run for an empty payload")
	}
}

func TestPasteInternalCarriesActiveFormats(t *testing.T) {
	c, clip := newController(t)
	v := richtext.FromString("xy").WithSelection(1, 1)

	res := c.Paste(v, PasteIntent{
		HTML:          "ab",
		Internal:      true,
		ActiveFormats: []richtext.Format{richtext.NewFormat("strong")},
	}, Capabilities{})
	if res.Kind != KindUpdated {
		t.Fatalf("expected updated, got %v", res.Kind)
	}
	if res.Value.String() != "xaby" {
		t.Errorf("expected %q, got %q", "xaby", res.Value.String())
	}
	for i := 1; i <= 2; i++ {
		stack := res.Value.Formats[i]
		if len(stack) == 0 || stack[0].Type != "strong" {
			t.Errorf("char %d should carry strong outermost, got %v", i, stack)
		}
	}
	if clip.lastReq != nil {
		t.Error("internal paste must bypass the clipboard parser")
	}
}

func TestPastePlainTextOnly(t *testing.T) {
	c, clip := newController(t, WithPolicy(config.Policy{PlainTextPaste: true}))
	v := richtext.FromString("ab").WithSelection(1, 1)

	res := c.Paste(v, PasteIntent{HTML: "<strong>X</strong>", PlainText: "X"}, Capabilities{})
	if res.Kind != KindUpdated || res.Value.String() != "aXb" {
		t.Fatalf("expected plain insertion, got %v %q", res.Kind, res.Value.String())
	}
	if len(res.Value.Formats[1]) != 0 {
		t.Errorf("plain-text paste must drop formatting, got %v", res.Value.Formats[1])
	}
	if clip.lastReq != nil {
		t.Error("plain-text-only paste must bypass the clipboard parser")
	}
}

func TestPasteModeSelection(t *testing.T) {
	tests := []struct {
		name   string
		caps   Capabilities
		policy config.Policy
		value  string
		plain  string
		want   PasteMode
	}{
		{"auto with replace and split", Capabilities{Replace: true, Split: true}, config.Policy{}, "ab", "x", ModeAuto},
		{"inline without split", Capabilities{Replace: true}, config.Policy{}, "ab", "x", ModeInline},
		{"inline without replace", Capabilities{Split: true}, config.Policy{}, "ab", "x", ModeInline},
		{"shortcode into empty value", Capabilities{Replace: true, Split: true}, config.Policy{}, "", "[gallery ids=1]", ModeBlocks},
		{"shortcode into non-empty value", Capabilities{Replace: true, Split: true}, config.Policy{}, "ab", "[gallery ids=1]", ModeAuto},
		{"url with embed policy", Capabilities{Replace: true, Split: true}, config.Policy{EmbedURLOnPaste: true}, "", "https://example.com", ModeBlocks},
		{"url without embed policy", Capabilities{Replace: true, Split: true}, config.Policy{}, "", "https://example.com", ModeAuto},
		{"url into non-empty value", Capabilities{Replace: true, Split: true}, config.Policy{EmbedURLOnPaste: true}, "ab", "https://example.com", ModeAuto},
		{"padded url with embed policy", Capabilities{Replace: true, Split: true}, config.Policy{EmbedURLOnPaste: true}, "", "  https://example.com  ", ModeBlocks},
		{"non-url with embed policy", Capabilities{Replace: true, Split: true}, config.Policy{EmbedURLOnPaste: true}, "", "hello", ModeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clip := newController(t, WithPolicy(tt.policy))
			clip.content = InlineContent("x")
			v := richtext.FromString(tt.value)

			c.Paste(v, PasteIntent{PlainText: tt.plain, HTML: "<p>x</p>"}, tt.caps)
			if clip.lastReq == nil {
				t.Fatal("clipboard parser did not run")
			}
			if clip.lastReq.Mode != tt.want {
				t.Errorf("expected mode %v, got %v", tt.want, clip.lastReq.Mode)
			}
		})
	}
}

func TestPasteInlineResult(t *testing.T) {
	c, clip := newController(t)
	clip.content = InlineContent("<em>cd</em>")
	v := richtext.FromString("ab").WithSelection(2, 2)

	res := c.Paste(v, PasteIntent{HTML: "<em>cd</em>", PlainText: "cd"}, Capabilities{})
	if res.Kind != KindUpdated || res.Value.String() != "abcd" {
		t.Fatalf("expected inline insertion, got %v %q", res.Kind, res.Value.String())
	}
	if len(res.Value.Formats[2]) != 1 || res.Value.Formats[2][0].Type != "em" {
		t.Errorf("expected em formatting preserved, got %v", res.Value.Formats[2])
	}
}

func TestPasteInlineNormalizesNewlines(t *testing.T) {
	c, clip := newController(t, WithPolicy(multilinePolicy()))
	clip.content = InlineContent("a<br>b")
	v := richtext.New()

	res := c.Paste(v, PasteIntent{HTML: "a<br>b", PlainText: "a\nb"}, Capabilities{})
	if res.Kind != KindUpdated {
		t.Fatalf("expected updated, got %v", res.Kind)
	}
	if res.Value.String() != "a"+sep+"b" {
		t.Errorf("expected newline normalized to separator, got %q", res.Value.String())
	}
}

func TestPasteBlocksReplaceEmptyValue(t *testing.T) {
	c, clip := newController(t)
	b1 := block.New("core/paragraph", nil, "<p>a</p>")
	b2 := block.New("core/paragraph", nil, "<p>b</p>")
	clip.content = BlocksContent(b1, b2)
	v := richtext.New()

	res := c.Paste(v, PasteIntent{HTML: "<p>a</p><p>b</p>"}, Capabilities{Replace: true, Split: true})
	if res.Kind != KindReplace {
		t.Fatalf("expected replace, got %v", res.Kind)
	}
	if len(res.Replace.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(res.Replace.Blocks))
	}
	if res.Replace.FocusIndex != 1 || res.Replace.Caret != CaretAtEnd {
		t.Errorf("expected focus on last block with caret at end, got %d %v",
			res.Replace.FocusIndex, res.Replace.Caret)
	}
}

func TestPasteBlocksSplitNonEmptyValue(t *testing.T) {
	c, clip := newController(t)
	b1 := block.New("core/image", nil, "")
	clip.content = BlocksContent(b1)
	v := richtext.FromString("hello").WithSelection(2, 2)

	res := c.Paste(v, PasteIntent{HTML: "<img>"}, Capabilities{Replace: true, Split: true})
	if res.Kind != KindSplit {
		t.Fatalf("expected split, got %v", res.Kind)
	}
	items := res.Split.Items
	if len(items) != 3 {
		t.Fatalf("expected before/blocks/after, got %d items", len(items))
	}
	if items[0].Value.String() != "he" || items[2].Value.String() != "llo" {
		t.Errorf("unexpected halves %q / %q", items[0].Value.String(), items[2].Value.String())
	}
	if items[1].Kind != ItemBlocks || len(items[1].Blocks) != 1 {
		t.Errorf("expected pasted blocks in the middle")
	}
	// Focus lands on the last pasted block, caret at its end.
	if res.Split.FocusIndex != 1 || res.Split.Caret != CaretAtEnd {
		t.Errorf("expected focus 1 caret end, got %d %v", res.Split.FocusIndex, res.Split.Caret)
	}
}

func TestPasteBlocksWithoutSplitCapability(t *testing.T) {
	c, clip := newController(t)
	clip.content = BlocksContent(block.New("core/image", nil, ""))
	v := richtext.FromString("hello").WithSelection(2, 2)

	res := c.Paste(v, PasteIntent{HTML: "<img>"}, Capabilities{Replace: true})
	if res.Kind != KindUnhandled {
		t.Errorf("blocks without split capability should be unhandled, got %v", res.Kind)
	}
}

func TestPasteFiles(t *testing.T) {
	c, clip := newController(t)
	clip.content = BlocksContent(block.New("core/image", nil, ""))
	v := richtext.New()

	res := c.Paste(v, PasteIntent{Files: []string{"blob:1"}}, Capabilities{Replace: true, Split: true})
	if res.Kind != KindReplace {
		t.Fatalf("expected replace for file paste into empty value, got %v", res.Kind)
	}
	if clip.lastReq == nil {
		t.Fatal("clipboard parser did not run")
	}
	if clip.lastReq.Mode != ModeBlocks {
		t.Errorf("file paste should parse in blocks mode, got %v", clip.lastReq.Mode)
	}
	if !strings.Contains(clip.lastReq.HTML, `<img src="blob:1">`) {
		t.Errorf("expected synthesized placeholder markup, got %q", clip.lastReq.HTML)
	}
}

func TestPasteFilesIntoNonEmptyValueSplits(t *testing.T) {
	c, clip := newController(t)
	clip.content = BlocksContent(block.New("core/image", nil, ""))
	v := richtext.FromString("ab").WithSelection(1, 1)

	res := c.Paste(v, PasteIntent{Files: []string{"blob:1"}}, Capabilities{Replace: true, Split: true})
	if res.Kind != KindSplit {
		t.Errorf("expected split for file paste into non-empty value, got %v", res.Kind)
	}
}

func TestPasteEmptyParserOutput(t *testing.T) {
	c, clip := newController(t)
	clip.content = ClipboardContent{}
	v := richtext.FromString("ab")

	res := c.Paste(v, PasteIntent{HTML: "<p></p>"}, Capabilities{Replace: true, Split: true})
	if res.Kind != KindNoOp {
		t.Errorf("expected no-op for empty parser output, got %v", res.Kind)
	}
}
