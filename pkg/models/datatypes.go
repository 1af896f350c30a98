package models

import (
	"hash/fnv"
	"strings"
)

// DatatypeInfo describes a datatype code used in the catalog
type DatatypeInfo struct {
	Code        string `json:"code" yaml:"code"`
	Label       string `json:"label" yaml:"label"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string `json:"-" yaml:"-"`
}

// KnownDatatypes lists the datatype codes of the AFD dictionary
var KnownDatatypes = map[string]DatatypeInfo{
	"JN": {Code: "JN", Label: "Ja/Nee", Example: "J of N", Description: "Boolean waarde", Color: "#3498db"},
	"A0": {Code: "A0", Label: "Alfanumeriek", Example: "ABC123", Description: "Letters en cijfers", Color: "#2ecc71"},
	"A1": {Code: "A1", Label: "Alfanumeriek", Color: "#2ecc71"},
	"A2": {Code: "A2", Label: "Alfanumeriek", Color: "#2ecc71"},
	"D1": {Code: "D1", Label: "Datum", Example: "JJJJMMDD", Description: "Datum formaat", Color: "#9b59b6"},
	"D3": {Code: "D3", Label: "Datum", Color: "#9b59b6"},
	"B2": {Code: "B2", Label: "Bedrag", Example: "12345.67", Description: "Numeriek bedrag", Color: "#f1c40f"},
	"T1": {Code: "T1", Label: "Tijd", Example: "UUMM", Description: "Tijd formaat", Color: "#5a82d7"},
	"P3": {Code: "P3", Label: "Percentage", Example: "12.345", Description: "Percentage waarde", Color: "#e67e22"},
	"ME": {Code: "ME", Label: "Memo", Example: "Vrije tekst", Description: "Memo veld", Color: "#95a5a6"},
}

// FallbackPalette colors datatypes that are not in KnownDatatypes
var FallbackPalette = []string{
	"#e74c3c",
	"#1abc9c",
	"#34495e",
	"#16a085",
	"#8e44ad",
	"#d35400",
	"#27ae60",
	"#2980b9",
	"#c0392b",
}

// LookupDatatype returns the info for a datatype code and whether it is known
func LookupDatatype(code string) (DatatypeInfo, bool) {
	info, ok := KnownDatatypes[strings.ToUpper(strings.TrimSpace(code))]
	return info, ok
}

// DatatypeLabel returns the label for a code, or the code itself when unknown
func DatatypeLabel(code string) string {
	if info, ok := LookupDatatype(code); ok {
		return info.Label
	}
	return code
}

// DatatypeColor returns the configured color for a datatype, or a stable
// color picked from FallbackPalette by hashing the code
func DatatypeColor(code string) string {
	if info, ok := LookupDatatype(code); ok && info.Color != "" {
		return info.Color
	}

	h := fnv.New32a()
	h.Write([]byte(strings.ToUpper(code)))
	return FallbackPalette[int(h.Sum32()%uint32(len(FallbackPalette)))]
}
