package edit

import (
	"github.com/ethitter/gutenberg/block"
	"github.com/ethitter/gutenberg/richtext"
)

// SplitItemKind identifies what a split item holds.
type SplitItemKind uint8

const (
	// ItemContent holds one half of the original value.
	ItemContent SplitItemKind = iota
	// ItemBlocks holds pasted block payloads inserted between the halves.
	ItemBlocks
	// ItemMiddle asks the host to invoke its middle-block hook.
	ItemMiddle
)

// SplitItem is one entry of a split decision.
type SplitItem struct {
	// Kind identifies the item.
	Kind SplitItemKind
	// Value is the content half for ItemContent items.
	Value richtext.Value
	// Original marks the ItemContent half that keeps the original unit's
	// identity, which determines merge and attribution semantics for the
	// produced sibling.
	Original bool
	// Blocks are the payloads for ItemBlocks items.
	Blocks []block.Payload
}

// blockCount returns how many blocks the item expands to at the host.
func (it SplitItem) blockCount() int {
	if it.Kind == ItemBlocks {
		return len(it.Blocks)
	}
	return 1
}

// SplitDecision asks the host to replace the current unit with the blocks
// produced from Items, in order. Paste-triggered and Enter-triggered splits
// share this contract, so the two are indistinguishable to the host.
type SplitDecision struct {
	// Items expand, in order, to the blocks the host creates: each
	// ItemContent and ItemMiddle item yields one block, each ItemBlocks
	// item yields its payloads.
	Items []SplitItem
	// FocusIndex selects, over the expanded block sequence, the block that
	// receives selection focus.
	FocusIndex int
	// Caret tells where in the focused block the caret lands.
	Caret CaretHint
}

// BlockCount returns the number of blocks the decision expands to.
func (d SplitDecision) BlockCount() int {
	n := 0
	for _, it := range d.Items {
		n += it.blockCount()
	}
	return n
}

// splitValue builds the split decision shared by the Enter and paste paths.
// pasted carries externally pasted blocks to insert between the halves, nil
// for a pure Enter split.
//
// The before half is omitted when it is empty and there is no pasted
// content to anchor on; the after half is omitted when pasted content is
// present and it is empty. With no pasted content and a middle capability,
// the host's middle hook supplies the center block. Focus lands on the last
// pasted block (caret at its end) when content was pasted, otherwise on the
// last block (caret at its start).
func (c *Controller) splitValue(v richtext.Value, pasted []block.Payload, caps Capabilities) Result {
	if !caps.Split {
		return Unhandled()
	}
	before, after, err := v.Split()
	if err != nil {
		return Error(err)
	}

	hasPasted := len(pasted) > 0
	// The after half is the original unit only when before is empty and
	// after is not: the split then happened at the very start and the
	// content keeps its identity.
	afterOriginal := before.IsEmpty() && !after.IsEmpty()

	var items []SplitItem
	lastPasted := -1
	if !before.IsEmpty() || hasPasted {
		items = append(items, SplitItem{Kind: ItemContent, Value: before, Original: !afterOriginal})
		lastPasted++
	}
	if hasPasted {
		items = append(items, SplitItem{Kind: ItemBlocks, Blocks: pasted})
		lastPasted += len(pasted)
	} else if caps.SplitMiddle {
		items = append(items, SplitItem{Kind: ItemMiddle})
	}
	if !hasPasted || !after.IsEmpty() {
		items = append(items, SplitItem{Kind: ItemContent, Value: after, Original: afterOriginal})
	}

	d := SplitDecision{Items: items}
	if hasPasted {
		d.FocusIndex = lastPasted
		d.Caret = CaretAtEnd
	} else {
		d.FocusIndex = d.BlockCount() - 1
		d.Caret = CaretAtStart
	}
	return Split(d)
}
