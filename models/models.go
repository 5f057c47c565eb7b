package models

// All lists every persisted model, in an order safe for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&Product{},
		&MenuGroup{},
		&Menu{},
		&MenuProduct{},
		&TableGroup{},
		&OrderTable{},
		&Order{},
		&OrderLineItem{},
	}
}
