package shipment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	productEntity "petdept.GO/model/entity/product"
	productRepo "petdept.GO/model/repository/product"
	"petdept.GO/service/sheet"
)

var (
	ErrRouteNotFound    = errors.New("no route for shipping identifier")
	ErrAmbiguousRoute   = errors.New("several routes for shipping identifier")
	ErrProductNotFound  = errors.New("no product with name and manufacturer")
	ErrAmbiguousProduct = errors.New("several products with name and manufacturer")
)

// Route columns of the origin/destination sheet.
const (
	ColShippingID    = "Shipping Identifier"
	ColOriginID      = "OriginID"
	ColDestinationID = "DestinationID"
)

type route struct {
	ShippingID    string `mapstructure:"Shipping Identifier"`
	OriginID      *int64 `mapstructure:"OriginID"`
	DestinationID *int64 `mapstructure:"DestinationID"`
	Line          int    `mapstructure:"-"`
}

// routeIndex groups route rows by shipping identifier, keeping sheet order.
type routeIndex map[string][]route

func buildRouteIndex(table *sheet.Table) (routeIndex, []sheet.RowError) {
	idx := make(routeIndex, len(table.Rows))
	var bad []sheet.RowError
	for _, row := range table.Rows {
		var r route
		if err := row.Decode(&r); err != nil {
			bad = append(bad, sheet.RowError{Sheet: table.Name, Line: row.Line, Err: err})
			continue
		}
		r.Line = row.Line
		key := shippingKey(r.ShippingID)
		idx[key] = append(idx[key], r)
	}
	return idx, bad
}

// resolveRoute applies the match policy: zero routes is an error, several is an error only when strict.
func (idx routeIndex) resolveRoute(shippingID string, strict bool) (route, string, error) {
	matches := idx[shippingKey(shippingID)]
	switch {
	case len(matches) == 0:
		return route{}, "", fmt.Errorf("%w %q", ErrRouteNotFound, shippingID)
	case len(matches) > 1 && strict:
		return route{}, "", fmt.Errorf("%w %q (%d rows)", ErrAmbiguousRoute, shippingID, len(matches))
	case len(matches) > 1:
		return matches[0], fmt.Sprintf("shipping identifier %q has %d routes, using line %d",
			shippingID, len(matches), matches[0].Line), nil
	}
	return matches[0], "", nil
}

func resolveProduct(repo *productRepo.ProductRepository, name string, manufacturerID *int64, strict bool) (productEntity.Product, string, error) {
	products, err := repo.FindByNameAndManufacturer(name, manufacturerID)
	if err != nil {
		return productEntity.Product{}, "", fmt.Errorf("look up product %q: %w", name, err)
	}
	ref := productRef(name, manufacturerID)
	switch {
	case len(products) == 0:
		return productEntity.Product{}, "", fmt.Errorf("%w %s", ErrProductNotFound, ref)
	case len(products) > 1 && strict:
		return productEntity.Product{}, "", fmt.Errorf("%w %s (%d rows)", ErrAmbiguousProduct, ref, len(products))
	case len(products) > 1:
		return products[0], fmt.Sprintf("product %s matches %d rows, using ProductID %d",
			ref, len(products), products[0].ProductID), nil
	}
	return products[0], "", nil
}

func productRef(name string, manufacturerID *int64) string {
	if manufacturerID == nil {
		return fmt.Sprintf("(%q, NULL)", name)
	}
	return fmt.Sprintf("(%q, %d)", name, *manufacturerID)
}

// shippingKey makes "100" and "100.0" the same identifier.
func shippingKey(id string) string {
	id = strings.TrimSpace(id)
	if f, err := strconv.ParseFloat(id, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return id
}
