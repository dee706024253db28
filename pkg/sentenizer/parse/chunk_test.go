package parse

import (
	"strings"
	"testing"
)

func joinChunks(chunks []Chunk) string {
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Text)
	}
	return b.String()
}

func TestChunksCutAfterMarkerRuns(t *testing.T) {
	p := New(DefaultMarkers())

	chunks := p.Chunks("Что?! Да... Нет")
	want := []string{"Что?!", " Да...", " Нет"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d: %+v", len(want), len(chunks), chunks)
	}
	for i, c := range chunks {
		if c.Text != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, c.Text, want[i])
		}
		if c.Separator {
			t.Errorf("chunk %d should not be a separator", i)
		}
	}
}

func TestChunksParagraphSeparator(t *testing.T) {
	p := New(DefaultMarkers())

	text := "Раз.\n \n\nДва."
	chunks := p.Chunks(text)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %+v", len(chunks), chunks)
	}
	if !chunks[1].Separator || chunks[1].Text != "\n \n\n" {
		t.Errorf("middle chunk should be the separator, got %+v", chunks[1])
	}
	if chunks[0].Separator || chunks[2].Separator {
		t.Error("text chunks flagged as separators")
	}
}

func TestChunksSingleNewlineIsNotSeparator(t *testing.T) {
	p := New(DefaultMarkers())

	for _, c := range p.Chunks("строка\nещё") {
		if c.Separator {
			t.Fatalf("single newline produced a separator: %+v", c)
		}
	}
}

func TestChunksLossless(t *testing.T) {
	p := New(DefaultMarkers())

	texts := []string{
		"",
		".",
		"...",
		"Он живёт в г. Москве.",
		"\n\nНачало",
		"Конец\n\n",
		"А. С. Пушкин родился в 1799 г.!? \u00a0Да…\n\n\n«Цитата.» (т. е. что-то)",
		"no markers at all",
	}
	for _, text := range texts {
		chunks := p.Chunks(text)
		if got := joinChunks(chunks); got != text {
			t.Errorf("chunks of %q rejoin to %q", text, got)
		}
		for i, c := range chunks {
			if c.Text == "" {
				t.Errorf("empty chunk %d for %q", i, text)
			}
			if text[c.Start:c.End] != c.Text {
				t.Errorf("offsets of chunk %d for %q do not match its text", i, text)
			}
		}
	}
}

func TestWindows(t *testing.T) {
	s := "Москва — столица"

	if got := LeftWindow(s, 7); got != "столица" {
		t.Errorf("LeftWindow = %q", got)
	}
	if got := RightWindow(s, 6); got != "Москва" {
		t.Errorf("RightWindow = %q", got)
	}
	if got := LeftWindow(s, 100); got != s {
		t.Errorf("LeftWindow wider than text = %q", got)
	}
	if got := RightWindow(s, 100); got != s {
		t.Errorf("RightWindow wider than text = %q", got)
	}
	if LeftWindow(s, 0) != "" || RightWindow(s, -1) != "" {
		t.Error("non-positive widths should give empty windows")
	}
}
