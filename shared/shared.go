package shared

import (
	"maps"
	"reflect"
	"slices"
	"strings"
	"todolist/shared/dto"
)

const cacheKeySeparator = ":"

// TransformFields converts the db tagged fields of a struct into a column map.
// Zero values are kept so an update can clear a column.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	return updatedFields
}

// FilterByFields matches every column in fields, in sorted column order so
// the generated query is stable.
func FilterByFields(table string, fields map[string]any) dto.Where {
	columns := slices.Sorted(maps.Keys(fields))

	where := make(dto.Where, 0, len(columns))
	for _, column := range columns {
		where = append(where, dto.Eq(table, column, fields[column]))
	}

	return where
}

// BuildCacheKey joins the non-empty parts with ":".
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}
