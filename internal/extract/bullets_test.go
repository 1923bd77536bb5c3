package extract

import (
	"reflect"
	"testing"
)

func TestBullets_BasicMarkers(t *testing.T) {
	text := `- first point
* second point
• third point
+ fourth point`

	got := Bullets(text)
	want := []string{"first point", "second point", "third point", "fourth point"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBullets_Enumerators(t *testing.T) {
	text := `1. numbered item
23) long numbered item
a) lettered item
B. capital lettered item`

	got := Bullets(text)
	want := []string{"numbered item", "long numbered item", "lettered item", "capital lettered item"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBullets_SoftWrapContinuation(t *testing.T) {
	text := `- a point that wraps
  onto the next line
- a second point`

	got := Bullets(text)
	want := []string{"a point that wraps onto the next line", "a second point"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBullets_BlankLineClosesItem(t *testing.T) {
	text := `- first item

this line follows a blank so it belongs to no item

- second item`

	got := Bullets(text)
	want := []string{"first item", "second item"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBullets_TrailingItemFlushed(t *testing.T) {
	got := Bullets("- only item with no trailing newline")
	want := []string{"only item with no trailing newline"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBullets_EmptyAndMarkerless(t *testing.T) {
	if got := Bullets(""); len(got) != 0 {
		t.Errorf("Expected no items for empty input, got %v", got)
	}
	if got := Bullets("just prose\nacross two lines"); len(got) != 0 {
		t.Errorf("Expected no items without markers, got %v", got)
	}
}

func TestBullets_CRLF(t *testing.T) {
	got := Bullets("- windows line\r\n- another one\r\n")
	want := []string{"windows line", "another one"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLooseLines_MinLength(t *testing.T) {
	text := `1. short
2. this one is long enough to keep
- tiny
- another line that clears the threshold
prose line without any marker`

	got := LooseLines(text, 10)
	want := []string{"this one is long enough to keep", "another line that clears the threshold"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLooseLines_Empty(t *testing.T) {
	if got := LooseLines("", 5); len(got) != 0 {
		t.Errorf("Expected no items, got %v", got)
	}
}
