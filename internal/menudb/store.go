package menudb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

// Store is the in-memory menu database: category names mapped to ordered item
// lists. Category order follows the source document; categories added later
// are appended. A Store is not safe for concurrent use.
type Store struct {
	order []string
	items map[string][]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{items: make(map[string][]string)}
}

// Len returns the number of categories.
func (s *Store) Len() int {
	return len(s.order)
}

// Categories returns category names in document order.
func (s *Store) Categories() []string {
	return slices.Clone(s.order)
}

// Has reports whether the category exists.
func (s *Store) Has(category string) bool {
	_, ok := s.items[category]
	return ok
}

// Items returns a copy of the category's items, or nil when it is missing.
func (s *Store) Items(category string) []string {
	list, ok := s.items[category]
	if !ok {
		return nil
	}
	return slices.Clone(list)
}

// Set replaces the items of a category, appending the category when new.
func (s *Store) Set(category string, items []string) {
	if _, ok := s.items[category]; !ok {
		s.order = append(s.order, category)
	}
	if items == nil {
		items = []string{}
	}
	s.items[category] = slices.Clone(items)
}

// Ensure creates an empty category when missing and reports whether it did.
func (s *Store) Ensure(category string) bool {
	if s.Has(category) {
		return false
	}
	s.Set(category, nil)
	return true
}

// Contains reports whether item is listed under category (exact match).
func (s *Store) Contains(category, item string) bool {
	return slices.Contains(s.items[category], item)
}

// Remove deletes the first occurrence of item from category and reports
// whether anything was removed. Later duplicates are left in place.
func (s *Store) Remove(category, item string) bool {
	list, ok := s.items[category]
	if !ok {
		return false
	}
	idx := slices.Index(list, item)
	if idx < 0 {
		return false
	}
	s.items[category] = slices.Delete(list, idx, idx+1)
	return true
}

// AppendSorted appends item to category and re-sorts the list in ascending
// byte order, which for UTF-8 is code point order. The category must exist.
func (s *Store) AppendSorted(category, item string) {
	list := append(s.items[category], item)
	sort.Strings(list)
	s.items[category] = list
}

// UnmarshalJSON decodes a JSON object whose values are arrays of strings,
// keeping the key order of the document. A repeated key keeps its first
// position and its last value.
func (s *Store) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("menu database must be a JSON object")
	}

	fresh := NewStore()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("category %q: %w", category, err)
		}
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return fmt.Errorf("category %q: value must be a list of strings", category)
		}
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("category %q: value must be a list of strings: %w", category, err)
		}
		fresh.Set(category, items)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = *fresh
	return nil
}

// Encode renders the store the way the menu database is kept on disk: two
// space indentation, one item per line, empty lists as [], non-ASCII and
// HTML characters written literally, and no trailing newline.
func (s *Store) Encode() ([]byte, error) {
	if len(s.order) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, category := range s.order {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString("  ")
		if err := writeString(&buf, category); err != nil {
			return nil, err
		}
		buf.WriteString(": ")

		items := s.items[category]
		if len(items) == 0 {
			buf.WriteString("[]")
			continue
		}
		buf.WriteString("[\n")
		for j, item := range items {
			if j > 0 {
				buf.WriteString(",\n")
			}
			buf.WriteString("    ")
			if err := writeString(&buf, item); err != nil {
				return nil, err
			}
		}
		buf.WriteString("\n  ]")
	}
	buf.WriteString("\n}")
	return buf.Bytes(), nil
}

// writeString writes value as a JSON string. U+2028 and U+2029 are written
// literally; encoding/json escapes them even with HTML escaping off.
func writeString(buf *bytes.Buffer, value string) error {
	buf.WriteByte('"')
	for {
		i := strings.IndexAny(value, "\u2028\u2029")
		if i < 0 {
			break
		}
		if err := writeEscaped(buf, value[:i]); err != nil {
			return err
		}
		_, size := utf8.DecodeRuneInString(value[i:])
		buf.WriteString(value[i : i+size])
		value = value[i+size:]
	}
	if err := writeEscaped(buf, value); err != nil {
		return err
	}
	buf.WriteByte('"')
	return nil
}

// writeEscaped appends the escaped body of value without surrounding quotes.
func writeEscaped(buf *bytes.Buffer, value string) error {
	if value == "" {
		return nil
	}
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	quoted := bytes.TrimSuffix(tmp.Bytes(), []byte("\n"))
	buf.Write(quoted[1 : len(quoted)-1])
	return nil
}
