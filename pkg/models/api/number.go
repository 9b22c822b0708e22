package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NumberOrString keeps the raw text of a JSON number or string field so that the
// calculator can parse it with full precision.
type NumberOrString string

func (n *NumberOrString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberOrString(s)
		return nil
	}

	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil {
		return fmt.Errorf("expected a number or numeric string, got %s", data)
	}
	*n = NumberOrString(num.String())
	return nil
}

func (n NumberOrString) String() string {
	return string(n)
}
