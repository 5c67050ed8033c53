package menudb

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

func decode(t *testing.T, doc string) *Store {
	t.Helper()
	store := NewStore()
	if err := json.Unmarshal([]byte(doc), store); err != nil {
		t.Fatalf("decode %q: %v", doc, err)
	}
	return store
}

func TestUnmarshalKeepsDocumentOrder(t *testing.T) {
	store := decode(t, `{"soup": ["된장국"], "rice": ["김밥", "볶음밥"], "dessert": []}`)

	want := []string{"soup", "rice", "dessert"}
	if got := store.Categories(); !slices.Equal(got, want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	if got := store.Items("rice"); !slices.Equal(got, []string{"김밥", "볶음밥"}) {
		t.Fatalf("rice = %v", got)
	}
	if got := store.Items("dessert"); got == nil || len(got) != 0 {
		t.Fatalf("dessert should be an empty non-nil list, got %#v", got)
	}
}

func TestUnmarshalDuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	store := decode(t, `{"rice": ["a"], "main": [], "rice": ["b"]}`)

	if got := store.Categories(); !slices.Equal(got, []string{"rice", "main"}) {
		t.Fatalf("categories = %v", got)
	}
	if got := store.Items("rice"); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("rice = %v, want [b]", got)
	}
}

func TestUnmarshalRejectsNonListValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "top level array", doc: `["rice"]`},
		{name: "null value", doc: `{"rice": null}`},
		{name: "string value", doc: `{"rice": "김밥"}`},
		{name: "object value", doc: `{"rice": {"a": 1}}`},
		{name: "number items", doc: `{"rice": [1, 2]}`},
		{name: "mixed items", doc: `{"rice": ["김밥", null]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := json.Unmarshal([]byte(tc.doc), NewStore()); err == nil {
				t.Fatalf("expected error for %s", tc.doc)
			}
		})
	}
}

func TestEncodeMatchesOnDiskFormat(t *testing.T) {
	store := NewStore()
	store.Set("rice", []string{"김밥", "A&B <special>"})
	store.Set("main", nil)

	got, err := store.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "{\n" +
		"  \"rice\": [\n" +
		"    \"김밥\",\n" +
		"    \"A&B <special>\"\n" +
		"  ],\n" +
		"  \"main\": []\n" +
		"}"
	if string(got) != want {
		t.Fatalf("Encode mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestEncodeEmptyStore(t *testing.T) {
	got, err := NewStore().Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("got %q, want {}", got)
	}
}

func TestEncodeEscapesQuotesAndControlCharacters(t *testing.T) {
	store := NewStore()
	store.Set("side", []string{"say \"hi\"\n"})
	store.Set("main", []string{"a\u2028b", "c\u2029d", `\u2028`})

	got, err := store.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	roundTrip := decode(t, string(got))
	if items := roundTrip.Items("side"); !slices.Equal(items, []string{"say \"hi\"\n"}) {
		t.Fatalf("round trip lost data: %q", items)
	}

	// Line and paragraph separators stay literal; an escaped-looking text
	// with a real backslash keeps its backslash escaped.
	for _, want := range []string{"\"a\u2028b\"", "\"c\u2029d\"", `"\\u2028"`} {
		if !strings.Contains(string(got), want) {
			t.Fatalf("encoded output %q does not contain %q", got, want)
		}
	}
	if items := roundTrip.Items("main"); !slices.Equal(items, []string{"a\u2028b", "c\u2029d", `\u2028`}) {
		t.Fatalf("round trip lost data: %q", items)
	}
}

func TestRemoveDeletesFirstOccurrenceOnly(t *testing.T) {
	store := NewStore()
	store.Set("side", []string{"김", "단무지", "김"})

	if !store.Remove("side", "김") {
		t.Fatal("expected removal")
	}
	if got := store.Items("side"); !slices.Equal(got, []string{"단무지", "김"}) {
		t.Fatalf("side = %v", got)
	}
	if store.Remove("side", "없음") {
		t.Fatal("missing item should not be removed")
	}
	if store.Remove("nope", "김") {
		t.Fatal("missing category should not report removal")
	}
}

func TestAppendSortedUsesCodePointOrder(t *testing.T) {
	store := NewStore()
	store.Set("main", []string{"짜장면", "Apple"})

	store.AppendSorted("main", "밀면")
	store.AppendSorted("main", "banana")

	want := []string{"Apple", "banana", "밀면", "짜장면"}
	if got := store.Items("main"); !slices.Equal(got, want) {
		t.Fatalf("main = %v, want %v", got, want)
	}
}

func TestEnsureAppendsNewCategory(t *testing.T) {
	store := decode(t, `{"rice": []}`)

	if store.Ensure("rice") {
		t.Fatal("existing category should not be recreated")
	}
	if !store.Ensure("dessert") {
		t.Fatal("expected dessert to be created")
	}
	if got := store.Categories(); !slices.Equal(got, []string{"rice", "dessert"}) {
		t.Fatalf("categories = %v", got)
	}
	if !store.Has("dessert") || len(store.Items("dessert")) != 0 {
		t.Fatal("dessert should exist and be empty")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Set("rice", []string{"김밥"})

	items := store.Items("rice")
	items[0] = "changed"

	if !store.Contains("rice", "김밥") {
		t.Fatal("mutating the returned slice must not change the store")
	}
	if store.Items("missing") != nil {
		t.Fatal("missing category should return nil")
	}
}
