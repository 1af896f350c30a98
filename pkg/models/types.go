package models

// Kind identifies which variant a catalog row is
type Kind string

const (
	KindEntity    Kind = "E"
	KindAttribute Kind = "A"
)

// String returns a human readable label for the kind
func (k Kind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindAttribute:
		return "attribute"
	default:
		return string(k)
	}
}

// Fields holds the columns shared by entity and attribute rows
type Fields struct {
	EntityCode  string `json:"entity_code" yaml:"entity_code"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Datatype    string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	CodelistID  string `json:"codelist,omitempty" yaml:"codelist,omitempty"`
}

// Row is a single catalog record. It is implemented only by *Entity and
// *Attribute, so a type switch over a Row is exhaustive.
type Row interface {
	Kind() Kind
	Common() *Fields
	// Key returns the natural key: the entity code for entities and
	// "<entity>_<attribute>" for attributes.
	Key() string
	isRow()
}

// Entity is a top-level catalog record
type Entity struct {
	Fields
}

// Attribute is a property of the entity referenced by EntityCode
type Attribute struct {
	Fields
	AttributeCode string `json:"attribute_code" yaml:"attribute_code"`
}

func (e *Entity) Kind() Kind      { return KindEntity }
func (e *Entity) Common() *Fields { return &e.Fields }
func (e *Entity) Key() string     { return e.EntityCode }
func (e *Entity) isRow()          {}

func (a *Attribute) Kind() Kind      { return KindAttribute }
func (a *Attribute) Common() *Fields { return &a.Fields }
func (a *Attribute) Key() string     { return a.EntityCode + "_" + a.AttributeCode }
func (a *Attribute) isRow()          {}

// AttributeCodeOf returns the attribute code of r, or "" for entities
func AttributeCodeOf(r Row) string {
	if a, ok := r.(*Attribute); ok {
		return a.AttributeCode
	}
	return ""
}

// ActiveFlag is the tri-state "actief" column of a codelist item
type ActiveFlag string

const (
	ActiveYes   ActiveFlag = "J"
	ActiveNo    ActiveFlag = "N"
	ActiveUnset ActiveFlag = ""
)

// ParseActiveFlag maps the raw column value to an ActiveFlag. Anything
// other than J or N (case-insensitive) is treated as unset.
func ParseActiveFlag(s string) ActiveFlag {
	switch s {
	case "J", "j":
		return ActiveYes
	case "N", "n":
		return ActiveNo
	default:
		return ActiveUnset
	}
}

// CodeItem is one enumerated value of a codelist
type CodeItem struct {
	Code        string     `json:"code" yaml:"code"`
	Description string     `json:"description" yaml:"description"`
	Active      ActiveFlag `json:"active,omitempty" yaml:"active,omitempty"`
}

// Codelists maps a codelist id to its items in source order
type Codelists map[string][]CodeItem
