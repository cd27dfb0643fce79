package quote

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const corpus = "# comment\n" +
	"23:57:00\tthree minutes to midnight\tAt three minutes to midnight the train left.\tThe Line\tA. Writer\r\n" +
	"\n" +
	"00.00.00\tMidnight, \"again\".\tNight Book\tB. Writer\n" +
	"23:57:30\tA second quote for the same minute.\tOther\tC. Writer\n" +
	"12:00:00\tnoon\tThe café closed at twelve – as always…\tDay Book\tD. Writer\n"

func TestParseTSV(t *testing.T) {
	entries, warnings, err := ParseTSV(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("ParseTSV() error = %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}
	if e := entries[0]; e.Key != 1437 || e.Marker != "three minutes to midnight" || e.Author != "A. Writer" {
		t.Fatalf("entries[0] = %+v", e)
	}
	if e := entries[1]; e.Key != 0 || e.Text != "Midnight, 'again'." {
		t.Fatalf("entries[1] = %+v", e)
	}
	if got, want := entries[3].Text, "The cafe closed at twelve - as always..."; got != want {
		t.Fatalf("entries[3].Text = %q, want %q", got, want)
	}
	// "noon" is not in the text.
	if len(warnings) != 1 || !strings.Contains(warnings[0], "marker") {
		t.Fatalf("warnings = %q", warnings)
	}
}

func TestParseTSVUnknownCharacters(t *testing.T) {
	entries, warnings, err := ParseTSV(strings.NewReader("01:02:03\tsnow ☃ fell\tT\tA\n"))
	if err != nil {
		t.Fatalf("ParseTSV() error = %v", err)
	}
	if entries[0].Text != "snow   fell" {
		t.Fatalf("Text = %q", entries[0].Text)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %q", warnings)
	}
}

func TestParseTSVErrors(t *testing.T) {
	tests := []string{
		"12:00\ttext\tt\ta\n",
		"24:00:00\ttext\tt\ta\n",
		"12:60:00\ttext\tt\ta\n",
		"1:00:00\ttext\tt\ta\n",
		"12:00:00\ttext\n",
		"12:00:00\t\tt\ta\n",
	}
	for _, in := range tests {
		if _, _, err := ParseTSV(strings.NewReader(in)); !errors.Is(err, ErrBadRow) {
			t.Fatalf("ParseTSV(%q) error = %v, want ErrBadRow", in, err)
		}
	}
}

func TestPackRoundTrip(t *testing.T) {
	entries, _, err := ParseTSV(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("ParseTSV() error = %v", err)
	}
	stack := Pack(entries)
	if stack.Quantity != 3 {
		t.Fatalf("Quantity = %d, want 3 (duplicate key dropped)", stack.Quantity)
	}
	for i := 1; i < len(stack.Assets); i++ {
		if stack.Assets[i-1].Key >= stack.Assets[i].Key {
			t.Fatalf("assets not ordered by key: %+v", stack.Assets)
		}
	}
	s, err := New(stack)
	if err != nil {
		t.Fatalf("New(Pack()) error = %v", err)
	}
	for _, e := range []Entry{entries[0], entries[1], entries[3]} {
		got, ok := s.Lookup(e.Key)
		if !ok || got != e.Text {
			t.Fatalf("Lookup(%d) = %q, %v, want %q", e.Key, got, ok, e.Text)
		}
	}
}

func TestWriteTSV(t *testing.T) {
	entries, _, err := ParseTSV(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("ParseTSV() error = %v", err)
	}
	var buf bytes.Buffer
	if err := WriteTSV(&buf, entries); err != nil {
		t.Fatalf("WriteTSV() error = %v", err)
	}
	again, _, err := ParseTSV(&buf)
	if err != nil {
		t.Fatalf("ParseTSV(WriteTSV()) error = %v", err)
	}
	if len(again) != len(entries) {
		t.Fatalf("round trip lost entries: %d != %d", len(again), len(entries))
	}
	for i := range entries {
		if again[i] != entries[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, again[i], entries[i])
		}
	}
}
