package employee

import "gorm.io/gorm"

// ActiveOnly restricts a query to employees eligible for a default payroll
// run.
func ActiveOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", StatusActive)
	}
}
