package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sixsevendeals/affiliate-api/internal/domain"
)

const landingPage = `<!DOCTYPE html>
<html>
<head><title>SixSevenDeals</title></head>
<body>
<script>
const products = [
    {
        'name': 'SAMSUNG T7 1TB Portable External SSD - Grey',
        'price': '$147.95',
        'originalPrice': '$177.54',
        'link': 'https://amzn.to/3LJ6ZxY',
        'badge': 'Performance',
        'rating': '4.8',
        'reviewCount': '4,500+'
    },
    {
        'name': 'ZZU Bluetooth Earphones - 48 Hours Playtime',
        'price': '$26.99',
        'originalPrice': '$39.99',
        'link': 'https://amzn.to/49q10I5',
        'badge': 'Value Pick',
        'rating': '4.5',
        'reviewCount': '3,200+'
    }
];
renderProducts(products);
</script>
</body>
</html>`

func TestFetchExtractsEmbeddedProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(landingPage))
	}))
	defer srv.Close()

	s := New(srv.URL, 5*time.Second)
	raws, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if len(raws) != 2 {
		t.Fatalf("expected 2 products, got %d", len(raws))
	}
	if raws[0].Name != "SAMSUNG T7 1TB Portable External SSD - Grey" {
		t.Errorf("unexpected name %q", raws[0].Name)
	}
	if raws[1].Price != "$26.99" {
		t.Errorf("unexpected price %q", raws[1].Price)
	}
}

func TestFetchMissingMarker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><script>var other = 1;</script></body></html>"))
	}))
	defer srv.Close()

	s := New(srv.URL, 5*time.Second)
	_, err := s.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for page without product array")
	}
	if !domain.IsFetchError(err) {
		t.Errorf("expected FetchError, got %T", err)
	}
}

func TestFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	s := New(srv.URL, time.Second)
	_, err := s.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}
	if !domain.IsFetchError(err) {
		t.Errorf("expected FetchError, got %T", err)
	}
}

func TestFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New("http://127.0.0.1:0", time.Second)
	_, err := s.Fetch(ctx)
	if !domain.IsFetchError(err) {
		t.Errorf("expected FetchError, got %v", err)
	}
}

func TestParseProductsMalformedJSON(t *testing.T) {
	_, err := parseProducts("const products = [{'name': }];")
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestParseProductsNoMatch(t *testing.T) {
	_, err := parseProducts("var nothing = true;")
	if err != errNoProductScript {
		t.Errorf("expected errNoProductScript, got %v", err)
	}
}
