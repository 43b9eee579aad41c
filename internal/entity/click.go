package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ClickEvent is one redirect occurrence. It is written once by the redirect
// handler and never updated.
type ClickEvent struct {
	ID        int64
	Alias     string
	Timestamp time.Time
	UserAgent string
	ClientIP  string
	Location  Location
}

// Location is opaque geolocation metadata attached to a click.
// The analytics engine stores it but never interprets it.
type Location map[string]any

// Value implements driver.Valuer so a Location is stored as JSON.
func (l Location) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}

	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("entity.Location.Value: %w", err)
	}

	return b, nil
}

// Scan implements sql.Scanner.
func (l *Location) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("entity.Location.Scan: unsupported type %T", src)
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}

	return json.Unmarshal(data, l)
}
