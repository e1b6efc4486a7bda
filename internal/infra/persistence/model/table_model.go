package model

import "time"

// TableModel is the GORM struct for the 'tables' table. Number is the natural
// primary key; every status write targets it.
type TableModel struct {
	Number    int    `gorm:"primaryKey;autoIncrement:false"`
	Salon     int    `gorm:"not null"`
	Capacity  int    `gorm:"not null"`
	Status    string `gorm:"size:16;not null;default:'libre'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TableModel) TableName() string {
	return "tables"
}
