// Package catalog holds the static fallback product list served when
// the live website cannot be scraped.
package catalog

import "github.com/sixsevendeals/affiliate-api/internal/domain"

// fallback is the seven curated SixSevenDeals listings, in the website
// embed schema. The slice is read-only shared data; callers receive a
// copy so a stray append cannot touch it.
var fallback = []domain.RawProduct{
	{
		Name:          "Canon EOS 3000D DSLR Camera with 18-55mm Lens - AU Version",
		Description:   "✅ 4.6★ from 1,200+ Aussie reviews | Official AU warranty | Ships Sydney. Perfect for Australian photography enthusiasts. Capture crisp 18MP detail with beautiful background blur.",
		Price:         "$633.49",
		OriginalPrice: "$685.00",
		Discount:      "8% OFF",
		Image:         "https://m.media-amazon.com/images/I/81fsA6RI10L._AC_SX425_.jpg",
		Link:          "https://amzn.to/3WYqCEC",
		Badge:         "Editor's Pick",
		Rating:        "4.6",
		ReviewCount:   "1,200+",
	},
	{
		Name:          "TOCOL iPhone 16 Privacy Screen Protector [2 Pack]",
		Description:   "✅ 4.7★ from 2,800+ Aussie reviews | Local warranty | Ships AU. 9H+ hardness with 25° privacy. Blocks prying eyes on trains & in offices. Perfect for Aussie commuters.",
		Price:         "$19.99",
		OriginalPrice: "$19.99",
		Discount:      "Limited Time",
		Image:         "https://m.media-amazon.com/images/I/71SfEaQzdaL._AC_SX569_.jpg",
		Link:          "https://amzn.to/4i2gR1E",
		Badge:         "Value Pick",
		Rating:        "4.7",
		ReviewCount:   "2,800+",
	},
	{
		Name:          "SAMSUNG T7 1TB Portable External SSD - Grey",
		Description:   "✅ 4.8★ from 4,500+ Aussie reviews | 3-year AU warranty | Ships Melbourne. Lightning-fast storage (1,050MB/s). Perfect for gamers, students, pros.",
		Price:         "$147.95",
		OriginalPrice: "$177.54",
		Discount:      "20% OFF",
		Image:         "https://m.media-amazon.com/images/I/A1sHjPpz6fL._AC_SX522_.jpg",
		Link:          "https://amzn.to/3LJ6ZxY",
		Badge:         "Performance",
		Rating:        "4.8",
		ReviewCount:   "4,500+",
	},
	{
		Name:          "ZZU Bluetooth Earphones - 48 Hours Playtime",
		Description:   "✅ 4.5★ from 3,200+ Aussie reviews | IPX7 waterproof | Ships Brisbane. 48hr battery, deep bass, perfect for beach runs & bush walks.",
		Price:         "$26.99",
		OriginalPrice: "$39.99",
		Discount:      "33% OFF",
		Image:         "https://m.media-amazon.com/images/I/61hAJU-6B-L._AC_SY355_.jpg",
		Link:          "https://amzn.to/49q10I5",
		Badge:         "Value Pick",
		Rating:        "4.5",
		ReviewCount:   "3,200+",
	},
	{
		Name:          "Xiaomi Redmi Watch 5 Active Smartwatch - Black",
		Description:   "✅ 4.6★ from 1,800+ Aussie reviews | 5ATM waterproof | Ships AU. 18-day battery, 140+ sports modes. Built for Aussie fitness enthusiasts.",
		Price:         "$53.00",
		OriginalPrice: "$59.50",
		Discount:      "11% OFF",
		Image:         "https://m.media-amazon.com/images/I/61BG7aYMZEL._AC_SY450_.jpg",
		Link:          "https://amzn.to/4r6YgG0",
		Badge:         "Trending",
		Rating:        "4.6",
		ReviewCount:   "1,800+",
	},
	{
		Name:          "Soundcore by Anker Q20i Noise Cancelling Headphones",
		Description:   "✅ 4.8★ from 6,300+ Aussie reviews | 40-hour battery | Ships AU. Hybrid ANC, Hi-Res audio. Block out noise on Aussie commutes.",
		Price:         "$85.99",
		OriginalPrice: "$119.95",
		Discount:      "28% OFF",
		Image:         "https://m.media-amazon.com/images/I/61E3AcWQg1L._AC_SY355_.jpg",
		Link:          "https://amzn.to/3X34ZTx",
		Badge:         "Performance",
		Rating:        "4.8",
		ReviewCount:   "6,300+",
	},
	{
		Name:          "Mini Drone for Kids – HS190 Pocket Quadcopter",
		Description:   "✅ 4.5★ from 1,500+ Aussie reviews | AU safety compliant | Ships Perth. Altitude hold, 3D flips. Perfect for Aussie backyards & parks.",
		Price:         "$49.99",
		OriginalPrice: "$59.99",
		Discount:      "17% OFF",
		Image:         "https://m.media-amazon.com/images/I/614A0UN52RL._AC_SX522_.jpg",
		Link:          "https://amzn.to/4rgXLZY",
		Badge:         "Value Pick",
		Rating:        "4.5",
		ReviewCount:   "1,500+",
	},
}

// Fallback returns the static product list.
func Fallback() []domain.RawProduct {
	out := make([]domain.RawProduct, len(fallback))
	copy(out, fallback)
	return out
}
