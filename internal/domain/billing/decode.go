package billing

import (
	"encoding/json"
	"strings"
)

// DecodeLineItems normalizes the stored line-item column into structured
// line items. Three encodings exist in the wild:
//
//   - the current form, a JSON array of line items
//   - a double-encoded JSON string wrapping that array
//   - the oldest form, a plain comma-joined list of procedure names
//
// Legacy comma-joined entries carry no numeric data; they decode with
// quantity 1 and rate 0 so the rest of the pipeline can treat every bill
// uniformly. Decoded amounts are always re-derived from rate and quantity.
func DecodeLineItems(raw []byte) ([]LineItem, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	if items, ok := decodeItemArray([]byte(trimmed)); ok {
		return items, nil
	}

	// Double-encoded rows are JSON strings whose content is itself JSON.
	var inner string
	if err := json.Unmarshal([]byte(trimmed), &inner); err == nil {
		if items, ok := decodeItemArray([]byte(inner)); ok {
			return items, nil
		}
		return decodeNameList(inner), nil
	}

	return decodeNameList(trimmed), nil
}

func decodeItemArray(data []byte) ([]LineItem, bool) {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	for i := range items {
		items[i].recompute()
	}
	return items, true
}

func decodeNameList(raw string) []LineItem {
	var items []LineItem
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		q := 1
		items = append(items, LineItem{Name: name, Quantity: &q})
	}
	return items
}
