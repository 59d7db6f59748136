package state

import "github.com/mattn/go-runewidth"

var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth returns the number of terminal columns r occupies.
func RuneWidth(r rune) int {
	return widthCondition.RuneWidth(r)
}

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return widthCondition.StringWidth(s)
}

// Input is a single-line text buffer edited at an insertion index. Column is
// the display width of the characters before Index.
type Input struct {
	chars  []rune
	index  int
	column int
}

// NewInput returns an empty buffer.
func NewInput() *Input {
	return &Input{}
}

// Chars returns a copy of the buffer contents.
func (in *Input) Chars() []rune {
	dup := make([]rune, len(in.chars))
	copy(dup, in.chars)
	return dup
}

// Text returns the buffer contents as a string.
func (in *Input) Text() string { return string(in.chars) }

// Len reports the number of characters in the buffer.
func (in *Input) Len() int { return len(in.chars) }

// Index returns the insertion position.
func (in *Input) Index() int { return in.index }

// CursorColumn returns the display column of the insertion position.
func (in *Input) CursorColumn() int { return in.column }

// Insert adds r at the insertion position and advances past it.
func (in *Input) Insert(r rune) {
	in.chars = append(in.chars, 0)
	copy(in.chars[in.index+1:], in.chars[in.index:])
	in.chars[in.index] = r
	in.index++
	in.column += RuneWidth(r)
}

// InsertText inserts every rune of text in order.
func (in *Input) InsertText(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		in.Insert(r)
	}
	return true
}

// Backspace removes the character before the insertion position.
func (in *Input) Backspace() bool {
	if len(in.chars) == 0 || in.index == 0 {
		return false
	}
	removed := in.chars[in.index-1]
	in.chars = append(in.chars[:in.index-1], in.chars[in.index:]...)
	in.index--
	in.column -= RuneWidth(removed)
	return true
}

// MoveLeft moves the insertion position back one character.
func (in *Input) MoveLeft() bool {
	if in.index == 0 {
		return false
	}
	in.index--
	in.column -= RuneWidth(in.chars[in.index])
	return true
}

// MoveRight moves the insertion position forward one character.
func (in *Input) MoveRight() bool {
	if in.index >= len(in.chars) {
		return false
	}
	in.column += RuneWidth(in.chars[in.index])
	in.index++
	return true
}

// Clear empties the buffer.
func (in *Input) Clear() {
	in.chars = nil
	in.index = 0
	in.column = 0
}
