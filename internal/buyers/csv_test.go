package buyers

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/exportscout/exportscout/internal/model"
)

// TestParse tests CSV decoding with and without headers.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		csv  string
		want []model.BuyerRecord
	}{
		{
			name: "recognized header",
			csv: `Company,Country,Contact
Acme Imports,USA,buy@acme.example
Distribuidora Norte,Mexico,ventas@norte.example`,
			want: []model.BuyerRecord{
				{Company: "Acme Imports", Country: "USA", Contact: "buy@acme.example"},
				{Company: "Distribuidora Norte", Country: "Mexico", Contact: "ventas@norte.example"},
			},
		},
		{
			name: "header columns in any order",
			csv: `Country,Email,Buyer Name
USA,buy@acme.example,Acme Imports`,
			want: []model.BuyerRecord{
				{Company: "Acme Imports", Country: "USA", Contact: "buy@acme.example"},
			},
		},
		{
			name: "no header falls back to positional columns",
			csv: `Acme Imports,USA,buy@acme.example
Distribuidora Norte,Mexico,ventas@norte.example`,
			want: []model.BuyerRecord{
				{Company: "Acme Imports", Country: "USA", Contact: "buy@acme.example"},
				{Company: "Distribuidora Norte", Country: "Mexico", Contact: "ventas@norte.example"},
			},
		},
		{
			name: "ragged rows yield empty fields",
			csv: `Company,Country,Contact
Acme Imports
Distribuidora Norte,Mexico`,
			want: []model.BuyerRecord{
				{Company: "Acme Imports", Country: "", Contact: ""},
				{Company: "Distribuidora Norte", Country: "Mexico", Contact: ""},
			},
		},
		{
			name: "extra columns are ignored",
			csv: `Company,Country,Contact,Notes
Acme Imports,USA,buy@acme.example,preferred`,
			want: []model.BuyerRecord{
				{Company: "Acme Imports", Country: "USA", Contact: "buy@acme.example"},
			},
		},
		{
			name: "fields are trimmed",
			csv:  `  Acme Imports , USA , buy@acme.example `,
			want: []model.BuyerRecord{
				{Company: "Acme Imports", Country: "USA", Contact: "buy@acme.example"},
			},
		},
		{
			name: "empty input yields empty table",
			csv:  "",
			want: []model.BuyerRecord{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(strings.NewReader(tt.csv))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestParseSyntaxError tests that malformed CSV surfaces as an error.
func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader(`Company,Country,Contact
"unterminated quote,USA,x@example.com`))
	if err == nil {
		t.Error("expected error for malformed CSV")
	}
}

// TestCSVSourceBuyers tests reading from a file.
func TestCSVSourceBuyers(t *testing.T) {
	t.Parallel()

	t.Run("reads existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "buyers.csv")
		content := "Company,Country,Contact\nAcme Imports,USA,buy@acme.example\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write CSV: %v", err)
		}

		got, err := NewCSVSource(path).Buyers(context.Background(), "term is ignored")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []model.BuyerRecord{
			{Company: "Acme Imports", Country: "USA", Contact: "buy@acme.example"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Buyers() = %+v, want %+v", got, want)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		t.Parallel()

		src := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"))
		if _, err := src.Buyers(context.Background(), "x"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
