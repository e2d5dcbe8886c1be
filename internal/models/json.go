package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of language codes stored as a JSON column
type StringList []string

// Value implements driver.Valuer for JSON column storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSON column storage
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	data, err := jsonBytes(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, l)
}

// Contains reports whether the list contains the given value
func (l StringList) Contains(v string) bool {
	for _, item := range l {
		if item == v {
			return true
		}
	}
	return false
}

// URLMap maps a language code to a URL, stored as a JSON column
type URLMap map[string]string

// Value implements driver.Valuer for JSON column storage
func (m URLMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSON column storage
func (m *URLMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	data, err := jsonBytes(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, m)
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON column type %T", src)
	}
}
