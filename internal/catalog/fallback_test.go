package catalog

import "testing"

func TestFallbackSize(t *testing.T) {
	products := Fallback()
	if len(products) != 7 {
		t.Fatalf("expected 7 fallback products, got %d", len(products))
	}
	for i, p := range products {
		if p.Name == "" || p.Price == "" || p.Link == "" || p.Badge == "" {
			t.Errorf("product %d has missing required fields: %+v", i, p)
		}
	}
}

func TestFallbackReturnsCopy(t *testing.T) {
	first := Fallback()
	first[0].Name = "mutated"

	second := Fallback()
	if second[0].Name == "mutated" {
		t.Error("Fallback must not expose shared backing data")
	}
}
