package results

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dparker/statlab/internal/stats"
)

func TestStore(t *testing.T) {
	t.Run("PutAndGet", func(t *testing.T) {
		s := New()
		seq := []float64{0.1, 0.2, 0.3}
		entry := s.Put("linear", seq, stats.Full(seq))

		if entry.ID == "" {
			t.Error("Expected a generated entry ID")
		}
		if entry.CreatedAt.IsZero() {
			t.Error("Expected a creation timestamp")
		}

		got, err := s.Get("linear")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != entry.ID {
			t.Errorf("Expected entry %s, got %s", entry.ID, got.ID)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		s := New()
		if _, err := s.Get("nothing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		s := New()
		s.Put("linear", []float64{0.1}, stats.Report{})
		second := s.Put("linear", []float64{0.9}, stats.Report{})

		got, err := s.Get("linear")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != second.ID {
			t.Error("Expected the second write to replace the first")
		}
		if got.Sequence[0] != 0.9 {
			t.Errorf("Expected 0.9, got %v", got.Sequence[0])
		}
	})

	t.Run("Kinds", func(t *testing.T) {
		s := New()
		s.Put("linear", []float64{0.1}, stats.Report{})
		s.Put("quadratic", []float64{0.2}, stats.Report{})

		kinds := s.Kinds()
		if len(kinds) != 2 {
			t.Errorf("Expected 2 kinds, got %v", kinds)
		}
	})
}

func TestExportCSV(t *testing.T) {
	t.Run("WritesHeaderAndRows", func(t *testing.T) {
		s := New()
		s.Put("linear", []float64{0.5, 0.6875}, stats.Report{})

		var buf bytes.Buffer
		if err := s.ExportCSV("linear", &buf); err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("Expected header plus 2 rows, got %v", lines)
		}
		if lines[0] != "index,value" {
			t.Errorf("Unexpected header: %q", lines[0])
		}
		if lines[1] != "0,0.5" {
			t.Errorf("Unexpected first row: %q", lines[1])
		}
		if lines[2] != "1,0.6875" {
			t.Errorf("Unexpected second row: %q", lines[2])
		}
	})

	t.Run("MissingKind", func(t *testing.T) {
		s := New()
		var buf bytes.Buffer
		if err := s.ExportCSV("nothing", &buf); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
