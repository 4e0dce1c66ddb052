package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Params is a map of property values with custom JSON unmarshaling that
// preserves numeric types correctly for Neo4j and for literal formatting.
//
// When unmarshaling from JSON:
//   - Whole numbers (e.g., 1, 42, -10) become int64
//   - Numbers with fractional parts (e.g., 1.5, 3.14) become float64
//   - Other types (strings, booleans, null) are preserved as-is
type Params map[string]any

func (p *Params) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var temp map[string]any
	if err := decoder.Decode(&temp); err != nil {
		return err
	}
	converted, ok := ConvertNumbers(temp).(map[string]any)
	if !ok {
		return fmt.Errorf("error during unmarshaling of params")
	}
	*p = converted
	return nil
}

// ConvertNumbers recursively replaces json.Number values with int64 where
// the number has no fractional part, float64 otherwise.
func ConvertNumbers(input any) any {
	switch v := input.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String() // Fallback

	case map[string]any:
		for k, val := range v {
			v[k] = ConvertNumbers(val)
		}
		return v

	case []any:
		for i, val := range v {
			v[i] = ConvertNumbers(val)
		}
		return v
	}
	return input
}

// BindArguments unmarshals the tool call arguments into a typed input
// struct. Number-valued fields of type Params keep integer types intact.
func BindArguments(request mcp.CallToolRequest, target any) error {
	raw, err := json.Marshal(request.Params.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments to JSON: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal arguments: %w", err)
	}
	return nil
}
