// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// AggregateDaily groups records by calendar day in loc.
// Orders count distinct order IDs. Cost is set only when at least one
// record of the day reports a cost.
func AggregateDaily(records []*entity.SalesRecord, loc *time.Location) map[string]*entity.DailySalesRow {
	rows := make(map[string]*entity.DailySalesRow)
	orders := make(map[string]map[string]struct{})

	for _, record := range records {
		soldAt := record.SoldAt.In(loc)
		key := soldAt.Format(entity.DateLayout)

		row, ok := rows[key]
		if !ok {
			row = &entity.DailySalesRow{Date: entity.StartOfDay(soldAt)}
			rows[key] = row
			orders[key] = make(map[string]struct{})
		}

		row.Revenue += record.Revenue
		if record.Cost != nil {
			cost := *record.Cost
			if row.Cost != nil {
				cost += *row.Cost
			}
			row.Cost = &cost
		}
		orders[key][orderKey(record)] = struct{}{}
	}

	for key, row := range rows {
		row.Orders = len(orders[key])
	}
	return rows
}

// AggregateHourly groups records by clock hour in loc.
func AggregateHourly(records []*entity.SalesRecord, loc *time.Location) map[string]*entity.HourlySalesRow {
	rows := make(map[string]*entity.HourlySalesRow)
	orders := make(map[string]map[string]struct{})

	for _, record := range records {
		soldAt := record.SoldAt.In(loc)
		hour := time.Date(soldAt.Year(), soldAt.Month(), soldAt.Day(), soldAt.Hour(), 0, 0, 0, loc)
		key := hour.Format("2006-01-02T15")

		row, ok := rows[key]
		if !ok {
			row = &entity.HourlySalesRow{Hour: hour}
			rows[key] = row
			orders[key] = make(map[string]struct{})
		}
		row.Revenue += record.Revenue
		orders[key][orderKey(record)] = struct{}{}
	}

	for key, row := range rows {
		row.Orders = len(orders[key])
	}
	return rows
}

// AggregateItems groups records per menu item, or per item name when unlinked,
// sorted by revenue descending.
func AggregateItems(records []*entity.SalesRecord) []entity.ItemSales {
	byKey := make(map[string]*entity.ItemSales)
	orders := make(map[string]map[string]struct{})
	keys := make([]string, 0)

	for _, record := range records {
		key := itemKey(record)
		item, ok := byKey[key]
		if !ok {
			item = &entity.ItemSales{
				MenuItemID: record.MenuItemID,
				ItemName:   record.ItemName,
				Category:   record.Category,
			}
			byKey[key] = item
			orders[key] = make(map[string]struct{})
			keys = append(keys, key)
		}
		item.Quantity += record.Quantity
		item.Revenue += record.Revenue
		orders[key][orderKey(record)] = struct{}{}
	}

	items := make([]entity.ItemSales, 0, len(keys))
	for _, key := range keys {
		item := byKey[key]
		item.Orders = len(orders[key])
		items = append(items, *item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue > items[j].Revenue
	})
	return items
}

// AggregateCategories groups records per category, sorted by revenue descending.
func AggregateCategories(records []*entity.SalesRecord) []entity.CategorySales {
	byName := make(map[string]*entity.CategorySales)
	names := make([]string, 0)

	for _, record := range records {
		name := record.Category
		if name == "" {
			name = "Uncategorized"
		}
		category, ok := byName[name]
		if !ok {
			category = &entity.CategorySales{Category: name}
			byName[name] = category
			names = append(names, name)
		}
		category.Revenue += record.Revenue
		category.Quantity += record.Quantity
	}

	categories := make([]entity.CategorySales, 0, len(names))
	for _, name := range names {
		categories = append(categories, *byName[name])
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Revenue > categories[j].Revenue
	})
	return categories
}

// countOrders counts distinct orders across records.
func countOrders(records []*entity.SalesRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		seen[orderKey(record)] = struct{}{}
	}
	return len(seen)
}

// orderKey falls back to the line ID so lines without an order still count once.
func orderKey(record *entity.SalesRecord) string {
	if record.OrderID != "" {
		return record.OrderID
	}
	return "line:" + record.ExternalLineID
}

func itemKey(record *entity.SalesRecord) string {
	if record.MenuItemID != nil && *record.MenuItemID != uuid.Nil {
		return record.MenuItemID.String()
	}
	return "name:" + record.ItemName
}
