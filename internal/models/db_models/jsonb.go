package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"vpgquote/internal/configurator"
)

// jsonb column wrappers around the configurator domain types. Admin-authored
// structures (options, visibility rules, legacy modifiers, submitted
// configurations) are stored as-is rather than normalized into rows.

type OptionList []configurator.QuestionOption

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal([]configurator.QuestionOption(o))
}

func (o *OptionList) Scan(src any) error {
	return scanJSON(src, o)
}

type VisibilityRulesJSON configurator.VisibilityConfig

func (v *VisibilityRulesJSON) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal((*configurator.VisibilityConfig)(v))
}

func (v *VisibilityRulesJSON) Scan(src any) error {
	return scanJSON(src, v)
}

type PriceModifierList []configurator.PriceModifier

func (m PriceModifierList) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal([]configurator.PriceModifier(m))
}

func (m *PriceModifierList) Scan(src any) error {
	return scanJSON(src, m)
}

type ConfigurationJSON map[string]any

func (c ConfigurationJSON) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(map[string]any(c))
}

func (c *ConfigurationJSON) Scan(src any) error {
	return scanJSON(src, c)
}

func scanJSON(src any, dst any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dst)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
