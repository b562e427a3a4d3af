package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList 以 JSON 数组形式存储字符串列表，兼容旧的纯字符串数据。
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if l == nil {
		return fmt.Errorf("db.StringList: Scan on nil pointer")
	}
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("db.StringList: unsupported Scan type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*l = StringList{}
		return nil
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		*l = arr
		return nil
	}

	*l = StringList{raw}
	return nil
}

// Contains reports whether value is present in the list.
func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}
