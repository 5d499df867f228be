// Package annotation extracts doxygen-style `@key value` pairs from comment
// text. Generated Yul uses them to carry provenance, e.g.
//
//	/// @src 0:120:35
//	/// @ast-id 12
//
// Each physical line holds at most one pair:
//   - leading whitespace, including blank lines, is skipped
//   - the key starts right after the first '@' and runs up to the next
//     whitespace; it may contain further '@' characters but cannot be empty
//   - the value is the rest of the line after the separating blanks, with
//     trailing whitespace removed; values never span lines
//
// Text that does not match ends the sequence. Nothing in here reports errors.
package annotation

import "iter"

// Entry is one extracted pair. OK is false for the end-of-sequence sentinel,
// whose Key and Value are always empty.
type Entry struct {
	Key   string
	Value string
	OK    bool
}

// Iterator walks the entries of a text front to back. It cannot be rewound.
type Iterator struct {
	text  string
	entry Entry
}

// Split returns an iterator positioned on the first entry of text.
func Split(text string) *Iterator {
	it := &Iterator{text: text}
	it.Next()
	return it
}

// Entry returns the current entry.
func (it *Iterator) Entry() Entry {
	return it.entry
}

// Valid reports whether the current entry is a real pair.
func (it *Iterator) Valid() bool {
	return it.entry.OK
}

// Next consumes one line and returns the new current entry. Once the
// sentinel has been reached further calls keep returning it.
func (it *Iterator) Next() Entry {
	text := it.text
	if text == "" {
		return it.invalidate()
	}

	i := 0
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	if i == len(text) || text[i] != '@' {
		return it.invalidate()
	}
	i++

	keyStart := i
	for i < len(text) && !isSpace(text[i]) {
		i++
	}
	if i == keyStart {
		return it.invalidate()
	}
	key := text[keyStart:i]

	for i < len(text) && isBlank(text[i]) {
		i++
	}

	valueStart := i
	for i < len(text) && text[i] != '\n' && text[i] != '\r' {
		i++
	}
	value := trimRightSpace(text[valueStart:i])

	switch {
	case i == len(text):
	case text[i] == '\n':
		i++
	case i+1 < len(text) && text[i+1] == '\n':
		i += 2
	default:
		// a lone carriage return is not a line terminator
		return it.invalidate()
	}

	it.text = text[i:]
	it.entry = Entry{Key: key, Value: value, OK: true}
	return it.entry
}

func (it *Iterator) invalidate() Entry {
	it.text = ""
	it.entry = Entry{}
	return it.entry
}

// All yields the valid key/value pairs of text in order.
func All(text string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for it := Split(text); it.Valid(); it.Next() {
			e := it.Entry()
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Lookup returns the value of the first entry named key.
func Lookup(text, key string) (string, bool) {
	for k, v := range All(text) {
		if k == key {
			return v, true
		}
	}
	return "", false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f':
		return true
	}
	return false
}

func trimRightSpace(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}
