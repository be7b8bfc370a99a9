package services

import "gorm.io/gorm/schema"

// protectedColumns may never be changed through a client patch.
var protectedColumns = []string{"id", "partner_id", "summary_id", "created_at", "updated_at", "deleted_at"}

// normalizePatch converts the JSON field names of a client patch into column
// names and strips the protected ones. aliases covers fields whose JSON name
// does not snake-case into their column (e.g. serviceCharge).
func normalizePatch(patch map[string]interface{}, aliases map[string]string) map[string]interface{} {
	ns := schema.NamingStrategy{}
	out := make(map[string]interface{}, len(patch))
	for key, value := range patch {
		if column, ok := aliases[key]; ok {
			out[column] = value
			continue
		}
		out[ns.ColumnName("", key)] = value
	}
	for _, column := range protectedColumns {
		delete(out, column)
	}
	return out
}
