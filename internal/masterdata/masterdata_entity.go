package masterdata

import (
	"time"

	"github.com/google/uuid"
)

// MasterRecord is the shared shape of every master table: a surrogate id
// plus a display value unique within its table.
type MasterRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tables is the closed set of master tables the resolver may touch. Lookups
// go through this registry so a table name can never be injected into SQL.
var Tables = map[string]string{
	"departments":         "name",
	"sub_departments":     "name",
	"locations":           "name",
	"designations":        "name",
	"business_units":      "name",
	"legal_entities":      "name",
	"bands":               "name",
	"pay_grades":          "name",
	"cost_centers":        "code",
	"leave_plans":         "name",
	"shifts":              "name",
	"weekly_offs":         "name",
	"attendance_policies": "name",
	"capture_schemes":     "name",
	"holiday_lists":       "name",
	"expense_policies":    "name",
}

func KnownTable(table string) bool {
	_, ok := Tables[table]
	return ok
}
