package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryBeverage   Category = "Beverage"
	CategorySpecial    Category = "Special"
)

var Categories = []Category{
	CategoryAppetizer,
	CategoryMainCourse,
	CategoryDessert,
	CategoryBeverage,
	CategorySpecial,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    Category           `bson:"category" json:"category"`
	ImageURL    string             `bson:"image_url" json:"imageURL"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`

	// ImportTaskID marks items written by a sheet import.
	ImportTaskID *primitive.ObjectID `bson:"import_task_id,omitempty" json:"-"`
}

// MenuItemUpdate carries a partial update; nil fields are left unchanged.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *Category
	ImageURL    *string
}

func (u MenuItemUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Category == nil && u.ImageURL == nil
}

// MenuItemSummary is the restricted view embedded in expanded order lines.
type MenuItemSummary struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Price float64            `json:"price"`
}

func (m *MenuItem) Summary() *MenuItemSummary {
	return &MenuItemSummary{ID: m.ID, Name: m.Name, Price: m.Price}
}

// Validate checks a full menu item as it is about to be stored.
func (m *MenuItem) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(m.Description) == "" {
		return NewValidationError("description", "description is required")
	}
	if m.Price < 0 {
		return NewValidationError("price", "price must not be negative")
	}
	if m.Category == "" {
		return NewValidationError("category", "category is required")
	}
	if !m.Category.Valid() {
		return NewValidationError("category", "unknown category "+string(m.Category))
	}
	return nil
}

// Validate checks only the fields present in the update.
func (u *MenuItemUpdate) Validate() error {
	if u.Name != nil {
		trimmed := strings.TrimSpace(*u.Name)
		if trimmed == "" {
			return NewValidationError("name", "name must not be empty")
		}
		u.Name = &trimmed
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		return NewValidationError("description", "description must not be empty")
	}
	if u.Price != nil && *u.Price < 0 {
		return NewValidationError("price", "price must not be negative")
	}
	if u.Category != nil && !u.Category.Valid() {
		return NewValidationError("category", "unknown category "+string(*u.Category))
	}
	return nil
}
