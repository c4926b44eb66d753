package edit

import (
	"html"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ethitter/gutenberg/block"
	"github.com/ethitter/gutenberg/richtext"
)

// shortcodeToken matches plain text consisting of a single shortcode-like
// token, e.g. "[gallery ids=1,2]".
var shortcodeToken = regexp.MustCompile(`^\s*\[[a-zA-Z0-9_-]+[^\]]*\]\s*$`)

// Paste decides how a paste payload lands: an inline insertion into the
// value, a full replacement by parsed blocks, or a split with the parsed
// blocks inserted at the caret.
//
// The classification order is fixed: internal paste, plain-text-only mode,
// file-only paste, then general HTML/plain-text paste. A payload carrying
// neither markup, text, nor files is consumed as a no-op.
func (c *Controller) Paste(v richtext.Value, intent PasteIntent, caps Capabilities) Result {
	if err := v.Validate(); err != nil {
		return Error(err)
	}
	if intent.HTML == "" && intent.PlainText == "" && len(intent.Files) == 0 {
		return NoOp()
	}

	// Internal content is already normalized by a surface of the same
	// kind; parse it directly, no clipboard parser involved.
	if intent.Internal {
		c.log.Debug("internal paste")
		frag, err := c.parser.Parse(intent.HTML, c.policy.MultilineTag, false)
		if err != nil {
			return Error(err)
		}
		return c.insertFragment(v, frag, intent.ActiveFormats)
	}

	if c.policy.PlainTextPaste {
		c.log.Debug("plain text paste")
		out, err := v.InsertString(intent.PlainText)
		if err != nil {
			return Error(err)
		}
		return Updated(out)
	}

	if intent.HTML == "" && len(intent.Files) > 0 {
		return c.pasteFiles(v, intent, caps)
	}

	mode := ModeInline
	if caps.Replace && caps.Split {
		mode = ModeAuto
	}
	if v.IsEmpty() && shortcodeToken.MatchString(intent.PlainText) {
		mode = ModeBlocks
	} else if c.policy.EmbedURLOnPaste && v.IsEmpty() && c.isURL(strings.TrimSpace(intent.PlainText)) {
		mode = ModeBlocks
	}
	c.log.Debug("clipboard parse", zap.String("mode", mode.String()))

	content, err := c.clipboard.Parse(ClipboardRequest{
		HTML:               intent.HTML,
		PlainText:          intent.PlainText,
		Mode:               mode,
		ContextTag:         c.policy.MultilineTag,
		PreserveWhitespace: c.policy.PreserveWhitespace,
	})
	if err != nil {
		return Error(err)
	}

	if content.Inline {
		frag, err := c.parser.Parse(content.InlineHTML, c.policy.MultilineTag, c.policy.PreserveWhitespace)
		if err != nil {
			return Error(err)
		}
		frag = frag.AddActiveFormats(intent.ActiveFormats...)
		if c.policy.Multiline() {
			frag, err = frag.Replace(newlineRuns, string(rune(richtext.LineSeparator)))
			if err != nil {
				return Error(err)
			}
		}
		out, err := v.Insert(frag)
		if err != nil {
			return Error(err)
		}
		return Updated(out)
	}

	if len(content.Blocks) > 0 {
		return c.placeBlocks(v, content.Blocks, caps)
	}
	return NoOp()
}

// pasteFiles handles a paste of files with no markup: placeholder markup
// referencing the files is synthesized and handed to the clipboard parser
// in block mode.
func (c *Controller) pasteFiles(v richtext.Value, intent PasteIntent, caps Capabilities) Result {
	c.log.Debug("file paste", zap.Int("files", len(intent.Files)))
	var sb strings.Builder
	for _, ref := range intent.Files {
		sb.WriteString(`<img src="` + html.EscapeString(ref) + `">`)
	}
	content, err := c.clipboard.Parse(ClipboardRequest{
		HTML:       sb.String(),
		Mode:       ModeBlocks,
		ContextTag: c.policy.MultilineTag,
	})
	if err != nil {
		return Error(err)
	}
	if len(content.Blocks) == 0 {
		return NoOp()
	}
	return c.placeBlocks(v, content.Blocks, caps)
}

// placeBlocks lands parsed blocks: a full replace when the value is empty
// and the host can replace, otherwise a split with the blocks in the
// middle.
func (c *Controller) placeBlocks(v richtext.Value, blocks []block.Payload, caps Capabilities) Result {
	if v.IsEmpty() && caps.Replace {
		return Replace(ReplaceDecision{
			Blocks:     blocks,
			FocusIndex: len(blocks) - 1,
			Caret:      CaretAtEnd,
		})
	}
	return c.splitValue(v, blocks, caps)
}

// insertFragment applies the active formats onto a freshly parsed fragment
// and inserts it at the selection.
func (c *Controller) insertFragment(v richtext.Value, frag richtext.Value, active []richtext.Format) Result {
	frag = frag.AddActiveFormats(active...)
	out, err := v.Insert(frag)
	if err != nil {
		return Error(err)
	}
	return Updated(out)
}
