// Package wizard implements the input-collection state machine for the home
// purchase projection: editable fields, the ordered step sequence, and the
// session object that consumes canonical input actions.
package wizard

// CharFilter identifies which characters a field accepts.
type CharFilter int

const (
	// DecimalChars accepts digits and a decimal point.
	DecimalChars CharFilter = iota

	// SignedDecimalChars accepts digits, a decimal point, and a leading minus.
	SignedDecimalChars

	// IntegerChars accepts digits only.
	IntegerChars
)

// Field is a single editable numeric text buffer.
type Field struct {
	text   string
	filter CharFilter
}

// NewField returns a field with the given filter, pre-seeded with text.
func NewField(filter CharFilter, text string) Field {
	return Field{text: text, filter: filter}
}

// Type appends r to the buffer if the filter accepts it; non-conforming
// characters are silently ignored.
func (f *Field) Type(r rune) {
	switch f.filter {
	case DecimalChars:
		if (r >= '0' && r <= '9') || r == '.' {
			f.text += string(r)
		}
	case SignedDecimalChars:
		if (r >= '0' && r <= '9') || r == '.' || (r == '-' && f.text == "") {
			f.text += string(r)
		}
	case IntegerChars:
		if r >= '0' && r <= '9' {
			f.text += string(r)
		}
	}
}

// Erase removes the last character of the buffer; no-op when empty.
func (f *Field) Erase() {
	if f.text != "" {
		f.text = f.text[:len(f.text)-1]
	}
}

// Text returns the current buffer contents.
func (f *Field) Text() string {
	return f.text
}

// Empty reports whether the buffer has no content.
func (f *Field) Empty() bool {
	return f.text == ""
}

// DualField pairs a percentage buffer with a dollar-amount buffer for a cost
// that can be entered either way. Exactly one side is active; toggling the
// selector never clears or alters either buffer.
type DualField struct {
	Percent Field
	Amount  Field

	usePercent bool
}

// NewDualField returns a dual field starting on the percent side.
func NewDualField(percentText, amountText string) DualField {
	return DualField{
		Percent:    NewField(DecimalChars, percentText),
		Amount:     NewField(DecimalChars, amountText),
		usePercent: true,
	}
}

// Toggle flips which side is active.
func (d *DualField) Toggle() {
	d.usePercent = !d.usePercent
}

// UsePercent reports whether the percent side is active.
func (d *DualField) UsePercent() bool {
	return d.usePercent
}

// Active returns the side the selector currently points at.
func (d *DualField) Active() *Field {
	if d.usePercent {
		return &d.Percent
	}
	return &d.Amount
}
