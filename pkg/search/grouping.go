package search

import (
	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// GroupedItem is one top-level entry of the grouped view. It is implemented
// by *GroupedEntity, *OrphanAttribute and *FlatRow.
type GroupedItem interface {
	// Row returns the row rendered at the top level
	Row() models.Row
	isGroupedItem()
}

// GroupedEntity is an entity with the filtered attributes that belong to it
type GroupedEntity struct {
	Entity     *models.Entity
	Attributes []*models.Attribute
	// AttributeCount counts every attribute of the entity in the store,
	// including the ones hidden by the current filters
	AttributeCount int
}

// OrphanAttribute is a filtered attribute whose entity is not shown
type OrphanAttribute struct {
	Attribute *models.Attribute
}

// FlatRow is an ungrouped row, used when only attributes are requested
type FlatRow struct {
	Value models.Row
}

func (g *GroupedEntity) Row() models.Row   { return g.Entity }
func (o *OrphanAttribute) Row() models.Row { return o.Attribute }
func (f *FlatRow) Row() models.Row         { return f.Value }

func (*GroupedEntity) isGroupedItem()   {}
func (*OrphanAttribute) isGroupedItem() {}
func (*FlatRow) isGroupedItem()         {}

// Group nests the filtered attributes under their filtered entities.
//
// With an attribute-only type filter the rows are returned flat. Otherwise
// entities come first in filtered order. When the type filter is All and a
// search term or entity filter is active, filtered attributes whose entity
// is not shown are appended as orphans in filtered order; in every other
// case such attributes are left out.
//
// If the store holds several entity rows with the same code, the
// attributes are nested under the first of them only, so no row appears
// twice.
func Group(filtered []models.Row, store *catalog.Store, q models.Query) []GroupedItem {
	q = q.Normalize()

	if q.Type == models.TypeAttributeOnly {
		items := make([]GroupedItem, 0, len(filtered))
		for _, row := range filtered {
			items = append(items, &FlatRow{Value: row})
		}
		return items
	}

	var entities []*models.Entity
	var attributes []*models.Attribute
	for _, row := range filtered {
		switch r := row.(type) {
		case *models.Entity:
			entities = append(entities, r)
		case *models.Attribute:
			attributes = append(attributes, r)
		}
	}

	byCode := make(map[string][]*models.Attribute)
	for _, attr := range attributes {
		byCode[attr.EntityCode] = append(byCode[attr.EntityCode], attr)
	}

	items := make([]GroupedItem, 0, len(entities))
	shown := make(map[string]bool, len(entities))
	for _, entity := range entities {
		group := &GroupedEntity{
			Entity:         entity,
			AttributeCount: store.AttributeCount(entity.EntityCode),
		}
		if !shown[entity.EntityCode] {
			group.Attributes = byCode[entity.EntityCode]
			shown[entity.EntityCode] = true
		}
		items = append(items, group)
	}

	if q.Type == models.TypeAll && (q.SearchTerm != "" || q.HasEntity()) {
		for _, attr := range attributes {
			if !shown[attr.EntityCode] {
				items = append(items, &OrphanAttribute{Attribute: attr})
			}
		}
	}

	return items
}
