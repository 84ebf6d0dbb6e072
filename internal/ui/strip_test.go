package ui

import (
	"log"
	"os"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestMain(m *testing.M) {
	if err := InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}
	os.Exit(m.Run())
}

func TestMeasureStripSingleItem(t *testing.T) {
	spec := StripSpec{FontSize: 32, Height: 60}
	widths, _, total := measureStrip([]StripItem{{Text: "Hello"}}, spec)

	if len(widths) != 1 {
		t.Fatalf("got %d widths, want 1", len(widths))
	}
	if widths[0] <= 0 {
		t.Errorf("item width = %v, want > 0", widths[0])
	}
	if total != widths[0] {
		t.Errorf("total = %v, want %v (no separators for one item)", total, widths[0])
	}
}

func TestMeasureStripSeparators(t *testing.T) {
	spec := StripSpec{FontSize: 32, Height: 60}
	items := []StripItem{{Text: "First"}, {Text: "Second"}, {Text: "Third"}}
	widths, sepW, total := measureStrip(items, spec)

	if sepW <= 0 {
		t.Fatalf("separator width = %v, want > 0", sepW)
	}
	want := widths[0] + widths[1] + widths[2] + 2*(sepW+2*ItemGap)
	if total != want {
		t.Errorf("total = %v, want %v", total, want)
	}
}

func TestMeasureStripDetailAddsWidth(t *testing.T) {
	spec := StripSpec{FontSize: 32, Height: 60}
	plain, _, _ := measureStrip([]StripItem{{Text: "Headline"}}, spec)
	detailed, _, _ := measureStrip([]StripItem{{Text: "Headline", Detail: "source"}}, spec)

	if detailed[0] <= plain[0] {
		t.Errorf("width with detail = %v, without = %v; want wider", detailed[0], plain[0])
	}
}

func TestMeasureStripLongerTextIsWider(t *testing.T) {
	spec := StripSpec{FontSize: 32, Height: 60}
	short, _, _ := measureStrip([]StripItem{{Text: "Hi"}}, spec)
	long, _, _ := measureStrip([]StripItem{{Text: "A considerably longer headline"}}, spec)

	if long[0] <= short[0] {
		t.Errorf("long width = %v, short = %v; want longer", long[0], short[0])
	}
}

func TestBuildStripEmpty(t *testing.T) {
	spec := StripSpec{FontSize: 32, Height: 60}
	if got := BuildStrip(nil, spec); got != nil {
		t.Error("BuildStrip(nil items) returned an image, want nil")
	}
	if got := BuildStrip([]StripItem{{Text: "x"}}, StripSpec{FontSize: 32}); got != nil {
		t.Error("BuildStrip with zero height returned an image, want nil")
	}
}
