package models

// OrderTable is a physical table on the restaurant floor.
//
// A table is either ungrouped and empty, ungrouped and occupied, or part of a
// table group. The methods below are the only way its state should change.
type OrderTable struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	TableGroupID   *uint `gorm:"index" json:"table_group_id"` // nullable, set while the table is grouped
	NumberOfGuests int   `gorm:"not null;check:number_of_guests >= 0" json:"number_of_guests"`
	Empty          bool  `gorm:"not null" json:"empty"`
}

// TableName specifies the table name for the OrderTable model
func (OrderTable) TableName() string {
	return "order_tables"
}

// NewOrderTable returns an ungrouped table
func NewOrderTable(numberOfGuests int, empty bool) *OrderTable {
	return &OrderTable{NumberOfGuests: numberOfGuests, Empty: empty}
}

// IsGrouped reports whether the table currently belongs to a table group
func (t *OrderTable) IsGrouped() bool {
	return t.TableGroupID != nil
}

// ChangeEmpty sets the empty flag of an ungrouped table
func (t *OrderTable) ChangeEmpty(empty bool) error {
	if t.IsGrouped() {
		return NewValidationError(CodeTableGrouped, "A grouped table cannot be changed")
	}
	t.Empty = empty
	return nil
}

// ChangeNumberOfGuests sets the guest count of an occupied table
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return NewValidationError(CodeNegativeGuests, "The number of guests cannot be negative")
	}
	if t.Empty {
		return NewValidationError(CodeOrderTableEmpty, "The number of guests cannot be set on an empty table")
	}
	t.NumberOfGuests = numberOfGuests
	return nil
}

// CheckGroupable returns the error Group would return, without changing the table
func (t *OrderTable) CheckGroupable() error {
	if t.IsGrouped() {
		return NewValidationError(CodeTableGrouped, "The table is already grouped")
	}
	if !t.Empty {
		return NewValidationError(CodeTableNotEmpty, "A table that is not empty cannot be grouped")
	}
	return nil
}

// Group assigns the table to a table group and marks it occupied
func (t *OrderTable) Group(tableGroupID uint) error {
	if err := t.CheckGroupable(); err != nil {
		return err
	}
	t.TableGroupID = &tableGroupID
	t.Empty = false
	return nil
}

// Ungroup releases the table from its group. The table stays occupied.
func (t *OrderTable) Ungroup() {
	t.TableGroupID = nil
	t.Empty = false
}
