package shared

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BaseLanguage is the required language of every multilingual text record.
// Other languages are optional and fall back to it.
const BaseLanguage = "az"

// LocalizedText is a multilingual text record stored as a single jsonb
// column. The base language (az) is mandatory; en and ru are optional.
type LocalizedText struct {
	Az string `json:"az"`
	En string `json:"en,omitempty"`
	Ru string `json:"ru,omitempty"`
}

// Get returns the variant for a language code, falling back to the base
// language when the requested variant is absent or unknown.
func (t LocalizedText) Get(lang string) string {
	switch lang {
	case "en":
		if t.En != "" {
			return t.En
		}
	case "ru":
		if t.Ru != "" {
			return t.Ru
		}
	}
	return t.Az
}

// IsZero reports whether no variant is set
func (t LocalizedText) IsZero() bool {
	return t.Az == "" && t.En == "" && t.Ru == ""
}

// Value implements driver.Valuer so the record persists as jsonb
func (t LocalizedText) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner
func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = LocalizedText{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into LocalizedText", value)
	}
}
