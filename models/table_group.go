package models

import "time"

// TableGroup merges several order tables for a combined booking. Member
// tables reference the group through OrderTable.TableGroupID.
type TableGroup struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedDate time.Time `gorm:"not null" json:"created_date"`
}

// TableName specifies the table name for the TableGroup model
func (TableGroup) TableName() string {
	return "table_groups"
}
