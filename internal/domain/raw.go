package domain

import "encoding/json"

// Scalar accepts a JSON string or number and keeps its text form.
// The website embed serves prices and ratings as strings ("$633.49",
// "4.6") while the legacy API variant serves plain numbers.
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = Scalar(n.String())
	return nil
}

func (s Scalar) String() string { return string(s) }

// RawProduct is the untrusted record shape coming off the wire. Two
// schemas exist: the sixsevendeals.com website embed and the legacy
// affiliate API variant. Both decode into this one struct; the accessor
// methods pick the populated variant so downstream code never has to
// care which schema a record arrived in.
type RawProduct struct {
	// Website embed schema.
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Price         Scalar `json:"price,omitempty"`
	OriginalPrice Scalar `json:"originalPrice,omitempty"`
	Discount      string `json:"discount,omitempty"`
	Image         string `json:"image,omitempty"`
	Link          string `json:"link,omitempty"`
	Badge         string `json:"badge,omitempty"`
	Rating        Scalar `json:"rating,omitempty"`
	ReviewCount   Scalar `json:"reviewCount,omitempty"`

	// Legacy affiliate API schema.
	Title        string   `json:"title,omitempty"`
	Category     string   `json:"category,omitempty"`
	CurrentPrice Scalar   `json:"current_price,omitempty"`
	ListPrice    Scalar   `json:"original_price,omitempty"`
	Reviews      Scalar   `json:"review_count,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	AffiliateURL string   `json:"affiliate_url,omitempty"`
	Features     []string `json:"features,omitempty"`
	Shipping     string   `json:"shipping,omitempty"`
	Warranty     string   `json:"warranty,omitempty"`
}

// ProductTitle returns the product name regardless of schema.
func (r RawProduct) ProductTitle() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

// DiscountedPrice returns the current selling price field.
func (r RawProduct) DiscountedPrice() Scalar {
	if r.Price != "" {
		return r.Price
	}
	return r.CurrentPrice
}

// FullPrice returns the pre-discount price field.
func (r RawProduct) FullPrice() Scalar {
	if r.OriginalPrice != "" {
		return r.OriginalPrice
	}
	return r.ListPrice
}

// ReviewCountRaw returns the review count field, possibly formatted
// like "1,200+".
func (r RawProduct) ReviewCountRaw() Scalar {
	if r.ReviewCount != "" {
		return r.ReviewCount
	}
	return r.Reviews
}

// ImageRef returns the product image URL.
func (r RawProduct) ImageRef() string {
	if r.Image != "" {
		return r.Image
	}
	return r.ImageURL
}

// AffiliateLink returns the outbound affiliate URL.
func (r RawProduct) AffiliateLink() string {
	if r.Link != "" {
		return r.Link
	}
	return r.AffiliateURL
}
