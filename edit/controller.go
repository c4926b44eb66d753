package edit

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/ethitter/gutenberg/block"
	"github.com/ethitter/gutenberg/config"
	"github.com/ethitter/gutenberg/richtext"
	"github.com/ethitter/gutenberg/transform"
)

// newlineRuns matches runs of one or more newline characters, normalized to
// the line separator when pasting into a multiline surface.
var newlineRuns = regexp.MustCompile(`\n+`)

// Controller decides how edit intents transform a value. It holds no state
// across calls beyond its configuration: every decision is a pure function
// of the value, the intent, and the capabilities passed in.
type Controller struct {
	parser    RichTextParser
	serial    Serializer
	clipboard ClipboardParser
	registry  *transform.Registry
	clean     Cleaner
	isURL     func(string) bool
	policy    config.Policy
	log       *zap.Logger
}

// Option configures a controller.
type Option func(*Controller)

// WithRegistry supplies the transform registry consulted on Enter and
// prefix checks.
func WithRegistry(r *transform.Registry) Option {
	return func(c *Controller) {
		c.registry = r
	}
}

// WithPolicy sets the surface's editing policy.
func WithPolicy(p config.Policy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

// WithCleaner sets the host's editor-only-format cleanup hook.
func WithCleaner(clean Cleaner) Option {
	return func(c *Controller) {
		c.clean = clean
	}
}

// WithURLValidator overrides the URL syntax check used by the paste
// classifier.
func WithURLValidator(fn func(string) bool) Option {
	return func(c *Controller) {
		c.isURL = fn
	}
}

// WithLogger sets the logger for decision debugging.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// NewController creates a controller over the given external services. The
// parser and serializer convert between HTML and values (htmltext.Codec
// serves as a default); the clipboard parser interprets pasted content.
func NewController(parser RichTextParser, serial Serializer, clipboard ClipboardParser, opts ...Option) *Controller {
	c := &Controller{
		parser:    parser,
		serial:    serial,
		clipboard: clipboard,
		isURL:     IsValidURL,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the controller's editing policy.
func (c *Controller) Policy() config.Policy {
	return c.policy
}

// SetPolicy replaces the editing policy, e.g. from a config reload.
func (c *Controller) SetPolicy(p config.Policy) {
	c.policy = p
}

// Handle dispatches an intent to the matching decision function.
func (c *Controller) Handle(v richtext.Value, intent Intent, caps Capabilities) Result {
	switch it := intent.(type) {
	case EnterIntent:
		return c.Enter(v, it, caps)
	case DeleteIntent:
		return c.Delete(v, it, caps)
	case PasteIntent:
		return c.Paste(v, it, caps)
	case PrefixCheckIntent:
		return c.PrefixCheck(v, caps)
	default:
		return Errorf("unknown intent %T", intent)
	}
}

// Enter decides the Enter key: transform replacement, newline or separator
// insertion, or a split, depending on capabilities and the surface mode.
func (c *Controller) Enter(v richtext.Value, intent EnterIntent, caps Capabilities) Result {
	if err := v.Validate(); err != nil {
		return Error(err)
	}
	v = c.cleanValue(v)

	// Transforms win over any split or insertion, even when a valid split
	// would also apply.
	if caps.Replace && c.registry != nil {
		if t, ok := c.registry.MatchEnter(v.String()); ok {
			c.log.Debug("enter transform matched", zap.String("transform", t.Name))
			b, err := t.Build(v.String())
			if err != nil {
				return Error(err)
			}
			return Replace(ReplaceDecision{
				Blocks:     []block.Payload{b},
				FocusIndex: 0,
				Caret:      CaretAtEnd,
			}).WithAutomatic()
		}
	}

	if c.policy.Multiline() {
		if intent.ShiftKey {
			return c.insertLineBreak(v)
		}
		if caps.Split && v.IsEmptyLine() {
			c.log.Debug("enter splits multiline value")
			return c.splitValue(v, nil, caps)
		}
		return c.insertText(v, string(rune(richtext.LineSeparator)))
	}

	canSplitAtEnd := caps.SplitAtEnd && v.IsCollapsed() && v.End == v.Len()
	switch {
	case intent.ShiftKey, !caps.Split && !canSplitAtEnd:
		return c.insertLineBreak(v)
	case !caps.Split:
		c.log.Debug("enter creates empty sibling at end")
		return SplitAtEnd()
	default:
		c.log.Debug("enter splits value")
		return c.splitValue(v, nil, caps)
	}
}

// Delete decides the Backspace and Delete keys. The engine intercepts only
// a collapsed, format-inactive caret sitting at the boundary the key acts
// across; everything else stays with the host's default editing.
func (c *Controller) Delete(v richtext.Value, intent DeleteIntent, caps Capabilities) Result {
	if err := v.Validate(); err != nil {
		return Error(err)
	}
	if !v.IsCollapsed() || len(intent.ActiveFormats) > 0 {
		return Unhandled()
	}
	atBoundary := v.Start == 0
	dir := Backward
	if intent.Forward {
		atBoundary = v.End == v.Len()
		dir = Forward
	}
	if !atBoundary {
		return Unhandled()
	}

	res := Unhandled()
	if caps.Merge {
		c.log.Debug("boundary merge", zap.String("direction", dir.String()))
		res = Merged(dir)
	}
	// Only Backspace removes an empty unit. Delete pulls the next unit in
	// via the merge alone; removing as well would destroy two units from
	// one keypress as the neighbor collapses into the emptied unit.
	if caps.Remove && v.IsEmpty() && !intent.Forward {
		if res.Kind == KindMerge {
			res = res.WithRemove(Backward)
		} else {
			res = Removed(Backward)
		}
	}
	return res
}

// PrefixCheck decides whether the text before the caret completes a
// registered prefix transform, replacing the unit when it does.
func (c *Controller) PrefixCheck(v richtext.Value, caps Capabilities) Result {
	if err := v.Validate(); err != nil {
		return Error(err)
	}
	if !caps.Replace || c.registry == nil {
		return Unhandled()
	}
	token, ok := transform.PrefixToken(v)
	if !ok {
		return Unhandled()
	}
	t, ok := c.registry.MatchPrefix(token)
	if !ok {
		return NoOp()
	}
	c.log.Debug("prefix transform matched",
		zap.String("token", token),
		zap.String("transform", t.Name))

	rest, err := v.Slice(v.Start, v.Len())
	if err != nil {
		return Error(err)
	}
	content, err := c.serial.Serialize(rest, c.policy.MultilineTag)
	if err != nil {
		return Error(err)
	}
	b, err := t.Build(content)
	if err != nil {
		return Error(err)
	}
	return Replace(ReplaceDecision{
		Blocks:     []block.Payload{b},
		FocusIndex: 0,
		Caret:      CaretAtEnd,
	}).WithAutomatic()
}

// insertLineBreak inserts a literal newline unless line breaks are
// disabled, which turns the key into an explicit no-op.
func (c *Controller) insertLineBreak(v richtext.Value) Result {
	if c.policy.DisableLineBreaks {
		return NoOp()
	}
	return c.insertText(v, "\n")
}

// insertText inserts plain text at the selection.
func (c *Controller) insertText(v richtext.Value, s string) Result {
	out, err := v.InsertString(s)
	if err != nil {
		return Error(err)
	}
	return Updated(out)
}

// cleanValue applies the host's editor-only-format cleanup, if any.
func (c *Controller) cleanValue(v richtext.Value) richtext.Value {
	if c.clean == nil {
		return v
	}
	return c.clean(v)
}
