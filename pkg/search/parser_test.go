package search

import (
	"errors"
	"testing"

	"github.com/afdtools/afd-catalog/pkg/models"
)

func TestParse(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		expected models.Query
	}{
		{
			name:     "plain term",
			input:    "klant",
			expected: query("klant", models.ModeLiteral, models.TypeAll, models.All, models.All),
		},
		{
			name:     "multiple words",
			input:    "een  persoon",
			expected: query("een persoon", models.ModeLiteral, models.TypeAll, models.All, models.All),
		},
		{
			name:     "type and datatype",
			input:    "type:A dt:A0 naam",
			expected: query("naam", models.ModeLiteral, models.TypeAttributeOnly, "A0", models.All),
		},
		{
			name:     "entity and mode",
			input:    "mode:wildcard entity:KLT k*",
			expected: query("k*", models.ModeWildcard, models.TypeAll, models.All, "KLT"),
		},
		{
			name:     "quoted term keeps spaces",
			input:    `"klant van" type:entity`,
			expected: query("klant van", models.ModeLiteral, models.TypeEntityOnly, models.All, models.All),
		},
		{
			name:     "quoted field is a term",
			input:    `"type:A"`,
			expected: query("type:A", models.ModeLiteral, models.TypeAll, models.All, models.All),
		},
		{
			name:     "unknown prefix is a term",
			input:    "mode:regex http://x",
			expected: query("http://x", models.ModeRegex, models.TypeAll, models.All, models.All),
		},
		{
			name:     "all resets a filter",
			input:    "dt:all",
			expected: query("", models.ModeLiteral, models.TypeAll, models.All, models.All),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input, models.NewQuery())
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Parse() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestParseKeepsBaseFilters(t *testing.T) {
	parser := NewParser()
	base := query("oud", models.ModeRegex, models.TypeEntityOnly, "A0", "KLT")

	got, err := parser.Parse("nieuw", base)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := query("nieuw", models.ModeRegex, models.TypeEntityOnly, "A0", "KLT")
	if got != want {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		input string
		want  error
	}{
		{"type:x", models.ErrInvalidTypeFilter},
		{"mode:fuzzy", models.ErrInvalidSearchMode},
	}

	for _, tt := range tests {
		_, err := parser.Parse(tt.input, models.NewQuery())
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "simple", input: "type:A naam", expected: []string{"type:A", "naam"}},
		{name: "last token kept", input: "a b", expected: []string{"a", "b"}},
		{name: "quoted", input: `dt:A0 "een klant"`, expected: []string{"dt:A0", `"een klant"`}},
		{name: "parentheses stay in token", input: "(a|b)", expected: []string{"(a|b)"}},
		{name: "trailing spaces", input: "a  ", expected: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parser.tokenize(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("tokenize() = %q, want %q", result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("tokenize()[%d] = %q, want %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	parser := NewParser()
	queries := []models.Query{
		models.NewQuery(),
		query("klant", models.ModeWildcard, models.TypeAttributeOnly, "A0", "KLT"),
		query("type:A naam", models.ModeLiteral, models.TypeAll, models.All, models.All),
	}

	for _, q := range queries {
		got, err := parser.Parse(Format(q), models.NewQuery())
		if err != nil {
			t.Fatalf("Parse(Format(%+v)) error = %v", q, err)
		}
		if got != q {
			t.Errorf("Parse(Format(q)) = %+v, want %+v", got, q)
		}
	}
}

func TestHasFields(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"klant", false},
		{"type:E", true},
		{"klant dt:A0", true},
		{"http://example", false},
		{`"type:E"`, false},
		{"type:", false},
	}

	for _, tt := range tests {
		if got := parser.HasFields(tt.input); got != tt.want {
			t.Errorf("HasFields(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
