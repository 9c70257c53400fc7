// Package model defines database models for persistence layer.
package model

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&IngredientModel{},
		&MenuItemModel{},
		&RecipeModel{},
		&RecipeIngredientModel{},
		&COGSEntryModel{},
		&SalesRecordModel{},
		&CompetitorItemModel{},
		&ActionItemModel{},
		&NotificationSettingsModel{},
	}
}
