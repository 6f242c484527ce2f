package parser

import (
	"log/slog"
	"reflect"
	"testing"

	"github.com/soclib/notableparse/pkg/table"
)

func TestMergeFallback(t *testing.T) {
	tests := []struct {
		name    string
		primary []string
		alt     []string
		want    []string
	}{
		{
			name:    "empty primary filled from alternate",
			primary: []string{"", "10.0.0.1", ""},
			alt:     []string{"10.0.0.9", "10.0.0.8", "10.0.0.7"},
			want:    []string{"10.0.0.9", "10.0.0.1", "10.0.0.7"},
		},
		{
			name:    "both empty stays empty",
			primary: []string{"", ""},
			alt:     []string{"", "10.0.0.7"},
			want:    []string{"", "10.0.0.7"},
		},
		{
			name:    "all primaries non-empty left unchanged",
			primary: []string{"10.0.0.1", "10.0.0.2"},
			alt:     []string{"10.9.9.9", "10.8.8.8"},
			want:    []string{"10.0.0.1", "10.0.0.2"},
		},
		{
			name:    "all primaries empty",
			primary: []string{"", ""},
			alt:     []string{"10.0.0.1", "10.0.0.2"},
			want:    []string{"10.0.0.1", "10.0.0.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := table.New()
			if err := f.SetColumn("src_ip", tt.primary); err != nil {
				t.Fatal(err)
			}
			if err := f.SetColumn("src_ip2", tt.alt); err != nil {
				t.Fatal(err)
			}

			mergeFallback(f, "src_ip", "src_ip2", slog.Default())

			if f.Len() != len(tt.primary) {
				t.Errorf("Len() = %d, want %d", f.Len(), len(tt.primary))
			}

			got, ok := f.Column("src_ip")
			if !ok {
				t.Fatal("src_ip column missing after merge")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("src_ip = %v, want %v", got, tt.want)
			}

			if _, ok := f.Column("src_ip2"); ok {
				t.Error("src_ip2 column not dropped")
			}
		})
	}
}

func TestMergeFallback_AlternateAbsent(t *testing.T) {
	// Merge on already-merged data is a no-op.
	f := table.New()
	if err := f.SetColumn("src_ip", []string{"", "10.0.0.1"}); err != nil {
		t.Fatal(err)
	}

	mergeFallback(f, "src_ip", "src_ip2", slog.Default())

	got, _ := f.Column("src_ip")
	if !reflect.DeepEqual(got, []string{"", "10.0.0.1"}) {
		t.Errorf("src_ip = %v, want unchanged", got)
	}
}

func TestMergeFallback_PrimaryAbsent(t *testing.T) {
	// A leftover alternate without its primary is still removed.
	f := table.New()
	if err := f.SetColumn("src_ip2", []string{"10.0.0.1"}); err != nil {
		t.Fatal(err)
	}

	mergeFallback(f, "src_ip", "src_ip2", slog.Default())

	if _, ok := f.Column("src_ip2"); ok {
		t.Error("src_ip2 column not dropped")
	}
}

func TestFallbackPairs_Order(t *testing.T) {
	if fallbackPairs[0].primary != "src_ip" || fallbackPairs[1].primary != "dest_ip" {
		t.Errorf("fallback pairs out of order: %v", fallbackPairs)
	}
}
