package inventory

import (
	"time"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// SeedCatalog returns the default catalog loaded on first run
func SeedCatalog(now time.Time) []domain.Product {
	v := func(volume string, setSize, currentSets, threshold int) domain.ProductVariant {
		return domain.ProductVariant{Volume: volume, SetSize: setSize, CurrentSets: currentSets, Threshold: threshold}
	}

	return []domain.Product{
		{
			ID:    "coca-cola",
			Name:  "Coca-Cola",
			Color: "from-red-600 via-red-500 to-red-700",
			Variants: []domain.ProductVariant{
				v("200ml", 24, 45, 10),
				v("750ml", 12, 38, 8),
				v("2.25L", 9, 25, 5),
			},
			LastUpdated: now,
		},
		{
			ID:    "thums-up",
			Name:  "Thums Up",
			Color: "from-gray-800 via-gray-700 to-gray-900",
			Variants: []domain.ProductVariant{
				v("200ml", 24, 35, 8),
				v("750ml", 12, 22, 6),
				v("300ml", 20, 18, 4),
			},
			LastUpdated: now,
		},
		{
			ID:    "sprite",
			Name:  "Sprite",
			Color: "from-emerald-500 via-green-500 to-teal-600",
			Variants: []domain.ProductVariant{
				v("200ml", 24, 52, 12),
				v("750ml", 12, 28, 8),
				v("2.25L", 9, 15, 4),
			},
			LastUpdated: now,
		},
		{
			ID:    "fanta",
			Name:  "Fanta",
			Color: "from-orange-500 via-amber-500 to-yellow-500",
			Variants: []domain.ProductVariant{
				v("200ml", 24, 42, 10),
				v("750ml", 12, 25, 6),
				v("2.25L", 9, 12, 3),
			},
			LastUpdated: now,
		},
		{
			ID:    "limca",
			Name:  "Limca",
			Color: "from-lime-500 via-green-400 to-emerald-500",
			Variants: []domain.ProductVariant{
				v("200ml", 24, 18, 6),
				v("750ml", 12, 15, 4),
			},
			LastUpdated: now,
		},
		{
			ID:    "maaza",
			Name:  "Maaza",
			Color: "from-yellow-500 via-orange-400 to-red-500",
			Variants: []domain.ProductVariant{
				v("200ml", 24, 28, 8),
				v("600ml", 15, 20, 5),
				v("1.2L", 12, 14, 3),
			},
			LastUpdated: now,
		},
		{
			ID:    "kinley",
			Name:  "Kinley",
			Color: "from-blue-500 via-cyan-500 to-teal-500",
			Variants: []domain.ProductVariant{
				v("500ml", 24, 30, 8),
				v("1L", 12, 22, 5),
				v("2L", 6, 16, 3),
			},
			LastUpdated: now,
		},
	}
}
