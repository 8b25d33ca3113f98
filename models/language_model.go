package models

// Language is immutable reference data created by an administrator. Rows are
// never deleted while a translation still points at them.
type Language struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:10;not null;unique" json:"code"`
	Name string `gorm:"size:50;not null" json:"name"`
}
