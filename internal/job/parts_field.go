package job

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// PriceUnknown marks a part line whose unit price must come from the
	// catalog price map at settlement time.
	PriceUnknown int64 = -1
)

type PartsKind int

const (
	PartsNone PartsKind = iota
	PartsLegacy
	PartsStructured
)

type PartLine struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"price"`
}

// PartsField is the job's parts-consumption descriptor. Source data arrives
// in three shapes: absent, legacy delimited text ("name:qty,name:qty"), or a
// JSON array of {name, quantity, price}. The shape is resolved once, here,
// into normalized lines; consumers never re-sniff the raw text.
type PartsField struct {
	Kind      PartsKind
	Raw       string
	Lines     []PartLine
	Malformed bool
}

// ParsePartsField never fails: anything unparseable degrades to an empty
// field with Malformed set, which prices at zero downstream.
func ParsePartsField(raw string) PartsField {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PartsField{Kind: PartsNone}
	}

	if strings.HasPrefix(raw, "[") {
		var lines []PartLine
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			return PartsField{Kind: PartsNone, Raw: raw, Malformed: true}
		}
		for i := range lines {
			if lines[i].Quantity <= 0 {
				lines[i].Quantity = 1
			}
		}
		return PartsField{Kind: PartsStructured, Raw: raw, Lines: lines}
	}

	lines := make([]PartLine, 0, 4)
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name := token
		qty := int64(1)
		if idx := strings.LastIndex(token, ":"); idx >= 0 {
			name = strings.TrimSpace(token[:idx])
			parsed, err := strconv.ParseInt(strings.TrimSpace(token[idx+1:]), 10, 64)
			if err != nil || parsed <= 0 {
				return PartsField{Kind: PartsNone, Raw: raw, Malformed: true}
			}
			qty = parsed
		}
		if name == "" {
			return PartsField{Kind: PartsNone, Raw: raw, Malformed: true}
		}

		lines = append(lines, PartLine{Name: name, Quantity: qty, UnitPrice: PriceUnknown})
	}

	if len(lines) == 0 {
		return PartsField{Kind: PartsNone, Raw: raw, Malformed: true}
	}
	return PartsField{Kind: PartsLegacy, Raw: raw, Lines: lines}
}

// EstimatedCost prices the declared lines: embedded prices win, unknown
// prices fall back to the catalog, missing catalog names price at zero.
func (p PartsField) EstimatedCost(priceMap map[string]int64) int64 {
	var total int64
	for _, line := range p.Lines {
		price := line.UnitPrice
		if price == PriceUnknown {
			price = priceMap[line.Name]
		}
		total += line.Quantity * price
	}
	return total
}

func (p PartsField) IsEmpty() bool {
	return p.Kind == PartsNone
}

// Value stores the raw source text so the column round-trips unchanged.
func (p PartsField) Value() (driver.Value, error) {
	if p.Raw == "" && p.Kind == PartsNone {
		return "", nil
	}
	return p.Raw, nil
}

func (p *PartsField) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*p = PartsField{Kind: PartsNone}
	case string:
		*p = ParsePartsField(v)
	case []byte:
		*p = ParsePartsField(string(v))
	default:
		return fmt.Errorf("unsupported parts column type %T", value)
	}
	return nil
}

// MarshalJSON exposes the normalized lines, not the raw text.
func (p PartsField) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Lines)
}

// UnmarshalJSON accepts the line-array form produced by MarshalJSON, so a
// job survives a cache round trip with its normalized parts intact.
func (p *PartsField) UnmarshalJSON(data []byte) error {
	var lines []PartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	if len(lines) == 0 {
		*p = PartsField{Kind: PartsNone}
		return nil
	}
	*p = PartsField{Kind: PartsStructured, Lines: lines}
	return nil
}
