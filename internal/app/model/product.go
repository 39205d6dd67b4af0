package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryChairs      ProductCategory = "chairs"
	CategoryMirrors     ProductCategory = "mirrors"
	CategoryFurniture   ProductCategory = "furniture"
	CategoryCosmetics   ProductCategory = "cosmetics"
	CategoryTools       ProductCategory = "tools"
	CategoryAccessories ProductCategory = "accessories"
)

// Product carries both French and Arabic display text; prices are in DZD.
type Product struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	NameAr        string          `gorm:"not null" json:"name_ar"`
	Description   string          `gorm:"type:text" json:"description"`
	DescriptionAr string          `gorm:"type:text" json:"description_ar"`
	Price         float64         `gorm:"not null" json:"price"`
	OriginalPrice *float64        `json:"original_price,omitempty"` // strike-through reference price
	Category      ProductCategory `gorm:"type:varchar(50);index" json:"category"`
	CategoryAr    string          `json:"category_ar"`
	ImageURL      string          `json:"image_url"`
	Rating        *float64        `json:"rating,omitempty"`
	IsNew         bool            `gorm:"default:false" json:"is_new"`
	IsSale        bool            `gorm:"default:false" json:"is_sale"`
	IsActive      bool            `gorm:"default:true;index" json:"is_active"`
	Stock         int             `gorm:"default:0" json:"stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ValidCategory reports whether c is one of the storefront categories
func ValidCategory(c ProductCategory) bool {
	switch c {
	case CategoryChairs, CategoryMirrors, CategoryFurniture,
		CategoryCosmetics, CategoryTools, CategoryAccessories:
		return true
	}
	return false
}
