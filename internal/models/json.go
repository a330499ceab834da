package models

import (
	"database/sql/driver"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON is a wrapper around gorm.io/datatypes.JSON to allow for custom data type mapping
type JSON struct {
	datatypes.JSON
}

// NewJSON encodes fields as a JSON object column value.
func NewJSON(fields map[string]any) (JSON, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return JSON{}, err
	}
	return JSON{JSON: datatypes.JSON(raw)}, nil
}

// Fields decodes the column value as a JSON object. An empty column yields an empty map.
func (j JSON) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if len(j.JSON) == 0 || string(j.JSON) == "null" {
		return fields, nil
	}
	if err := json.Unmarshal(j.JSON, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	if len(j.JSON) == 0 {
		return "{}", nil
	}
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// This resolves the issue where MSSQL does not support the 'json' data type.
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
