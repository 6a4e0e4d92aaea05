package service

import "github.com/DarshanRT1/Hotel-Booking/internal/domain"

// SampleMenu returns a fresh copy of the demo catalog. Prices are in USD.
func SampleMenu() []*domain.MenuItem {
	return []*domain.MenuItem{
		{
			Name:        "Paneer Tikka",
			Description: "Cottage cheese marinated in spices and grilled to perfection",
			Price:       3.50,
			Category:    domain.CategoryAppetizer,
			ImageURL:    "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=400",
		},
		{
			Name:        "Chicken Biryani",
			Description: "Aromatic basmati rice cooked with tender chicken and spices",
			Price:       5.99,
			Category:    domain.CategoryMainCourse,
			ImageURL:    "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400",
		},
		{
			Name:        "Butter Chicken",
			Description: "Tender chicken in a rich, creamy tomato-based sauce",
			Price:       6.50,
			Category:    domain.CategoryMainCourse,
			ImageURL:    "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=400",
		},
		{
			Name:        "Dal Makhani",
			Description: "Slow-cooked black lentils in a creamy butter sauce",
			Price:       4.25,
			Category:    domain.CategoryMainCourse,
			ImageURL:    "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400",
		},
		{
			Name:        "Samosa",
			Description: "Crispy pastry filled with spiced potatoes and peas",
			Price:       1.50,
			Category:    domain.CategoryAppetizer,
			ImageURL:    "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=400",
		},
		{
			Name:        "Gulab Jamun",
			Description: "Soft milk dumplings soaked in sweet syrup",
			Price:       2.50,
			Category:    domain.CategoryDessert,
			ImageURL:    "https://images.unsplash.com/photo-1589301760014-1b5e50e5c14e?w=400",
		},
		{
			Name:        "Mango Lassi",
			Description: "Refreshing yogurt-based drink with mango",
			Price:       2.00,
			Category:    domain.CategoryBeverage,
			ImageURL:    "https://images.unsplash.com/photo-1623065422902-30a2d299bbe4?w=400",
		},
		{
			Name:        "Masala Chai",
			Description: "Traditional Indian spiced tea",
			Price:       1.25,
			Category:    domain.CategoryBeverage,
			ImageURL:    "https://images.unsplash.com/photo-1561336313-0bd5e0b27ec8?w=400",
		},
		{
			Name:        "Tandoori Roti",
			Description: "Whole wheat bread baked in a clay oven",
			Price:       1.00,
			Category:    domain.CategoryAppetizer,
			ImageURL:    "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=400",
		},
		{
			Name:        "Kulfi",
			Description: "Traditional Indian ice cream with pistachios",
			Price:       2.75,
			Category:    domain.CategoryDessert,
			ImageURL:    "https://images.unsplash.com/photo-1588137378633-dea1336ce1e2?w=400",
		},
	}
}
