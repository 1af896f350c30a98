package search

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// Query parameters of a direct link
const (
	LinkParamEntity    = "entity"
	LinkParamAttribute = "attribute"
)

var ErrInvalidLink = errors.New("invalid direct link")

// DirectLink returns base with the query parameters that identify row
func DirectLink(base string, row models.Row) string {
	params := url.Values{}
	params.Set(LinkParamEntity, row.Common().EntityCode)
	if attr, ok := row.(*models.Attribute); ok {
		params.Set(LinkParamAttribute, attr.AttributeCode)
	}
	return strings.TrimSuffix(base, "?") + "?" + params.Encode()
}

// ParseDirectLink extracts the entity and attribute codes from a link. A
// bare query string ("entity=E1&attribute=A1") is accepted too.
func ParseDirectLink(link string) (entity, attribute string, err error) {
	raw := link
	if i := strings.Index(link, "?"); i >= 0 {
		raw = link[i+1:]
	}

	params, err := url.ParseQuery(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	entity = params.Get(LinkParamEntity)
	if entity == "" {
		return "", "", fmt.Errorf("%w: missing %s parameter", ErrInvalidLink, LinkParamEntity)
	}
	return entity, params.Get(LinkParamAttribute), nil
}

// ResolveLink finds the row a direct link points at
func ResolveLink(store *catalog.Store, link string) (models.Row, error) {
	entity, attribute, err := ParseDirectLink(link)
	if err != nil {
		return nil, err
	}
	return FindRow(store, entity, attribute)
}

// FindRow looks up an entity, or an attribute when attribute is non-empty
func FindRow(store *catalog.Store, entity, attribute string) (models.Row, error) {
	if attribute != "" {
		if a, ok := store.Attribute(entity, attribute); ok {
			return a, nil
		}
		return nil, fmt.Errorf("attribute %s_%s not found", entity, attribute)
	}
	if e, ok := store.Entity(entity); ok {
		return e, nil
	}
	return nil, fmt.Errorf("entity %s not found", entity)
}

// ParseKey splits a natural key ("E1" or "E1_A1") into its codes. Entity
// codes containing underscores are resolved against the store first.
func ParseKey(store *catalog.Store, key string) (models.Row, error) {
	if e, ok := store.Entity(key); ok {
		return e, nil
	}
	for i := strings.LastIndex(key, "_"); i > 0; i = strings.LastIndex(key[:i], "_") {
		if a, ok := store.Attribute(key[:i], key[i+1:]); ok {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no entity or attribute found for %q", key)
}
