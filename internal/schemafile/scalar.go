package schemafile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// scalarText is a default or choice value. Authors write them as numbers,
// booleans or strings; all are kept as the text the parser will coerce.
type scalarText string

func (s *scalarText) ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func (s *scalarText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	*s = scalarText(node.Value)
	return nil
}

func (s *scalarText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		return fmt.Errorf("empty value")
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalarText(str)
	case data[0] == '{' || data[0] == '[' || string(data) == "null":
		return fmt.Errorf("expected a scalar value, got %s", data)
	default:
		*s = scalarText(data)
	}
	return nil
}

func (s *scalarText) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*s = scalarText(v)
	case int64:
		*s = scalarText(strconv.FormatInt(v, 10))
	case float64:
		*s = scalarText(strconv.FormatFloat(v, 'g', -1, 64))
	case bool:
		*s = scalarText(strconv.FormatBool(v))
	default:
		return fmt.Errorf("expected a scalar value, got %T", v)
	}
	return nil
}
