package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// stringList stores a []string as a JSON array in a TEXT column.
type stringList []string

func (s stringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *stringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into stringList", src)
	}

	var out []string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
	}
	if len(out) == 0 {
		out = nil
	}
	*s = out
	return nil
}
