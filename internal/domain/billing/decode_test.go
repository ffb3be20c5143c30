package billing

import "testing"

func TestDecodeLineItems_JSONArray(t *testing.T) {
	raw := []byte(`[{"name":"CT Scan","quantity":2,"unit_rate":1200,"amount":0}]`)

	items, err := DecodeLineItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "CT Scan" || *items[0].Quantity != 2 {
		t.Errorf("unexpected item: %+v", items[0])
	}
	// Stored amounts are ignored; the amount comes from rate times quantity.
	if items[0].Amount != 2400 {
		t.Errorf("expected re-derived amount 2400, got %v", items[0].Amount)
	}
}

func TestDecodeLineItems_DoubleEncoded(t *testing.T) {
	raw := []byte(`"[{\"name\":\"X-Ray\",\"quantity\":1,\"unit_rate\":350,\"amount\":350}]"`)

	items, err := DecodeLineItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "X-Ray" || items[0].Amount != 350 {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestDecodeLineItems_CommaJoinedNames(t *testing.T) {
	raw := []byte(`"CT Scan, X-Ray,Dressing"`)

	items, err := DecodeLineItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"CT Scan", "X-Ray", "Dressing"} {
		item := items[i]
		if item.Name != want {
			t.Errorf("item %d: expected name %q, got %q", i, want, item.Name)
		}
		if item.Quantity == nil || *item.Quantity != 1 {
			t.Errorf("item %d: expected default quantity 1, got %v", i, item.Quantity)
		}
		if item.UnitRate != 0 || item.Amount != 0 {
			t.Errorf("item %d: expected zero rate and amount, got %+v", i, item)
		}
	}
}

func TestDecodeLineItems_PlainText(t *testing.T) {
	// Oldest rows stored the list without any JSON wrapping at all.
	items, err := DecodeLineItems([]byte(`Suture, Dressing`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Suture" || items[1].Name != "Dressing" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestDecodeLineItems_Empty(t *testing.T) {
	for _, raw := range []string{"", "null", "  "} {
		items, err := DecodeLineItems([]byte(raw))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if items != nil {
			t.Errorf("%q: expected nil items, got %+v", raw, items)
		}
	}
}
