package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DocumentLinks is a JSONB-backed slice of DocumentLink.
type DocumentLinks []DocumentLink

// Value implements driver.Valuer so sqlx can write the slice as JSONB.
func (l DocumentLinks) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshaling document links: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *DocumentLinks) Scan(src interface{}) error {
	if src == nil {
		*l = DocumentLinks{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for document links: %T", src)
	}
	if len(data) == 0 {
		*l = DocumentLinks{}
		return nil
	}
	return json.Unmarshal(data, l)
}
