// Package catalog provides the read side of the menu hierarchy:
// menus -> categories -> items -> prices.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// swagger:model MenuPrice
type Price struct {
	PriceID int     `json:"price_id"`
	Size    *string `json:"size" example:"Small"`
	// Unit price; prices form a history, only active rows are current
	Price         decimal.Decimal `json:"price" example:"3.75"`
	IsActive      bool            `json:"is_active"`
	EffectiveDate time.Time       `json:"effective_date"`
}

// swagger:model MenuItem
type Item struct {
	ItemID          int     `json:"item_id"`
	ItemName        string  `json:"item_name" example:"Latte"`
	HasSizeVariants bool    `json:"has_size_variants"`
	Prices          []Price `json:"prices"`
}

// swagger:model MenuCategory
type Category struct {
	CatID        int    `json:"cat_id"`
	CategoryName string `json:"category_name" example:"Hot Drinks"`
	Items        []Item `json:"items"`
}

// swagger:model Menu
type Menu struct {
	MenuID     int        `json:"menu_id"`
	MenuName   string     `json:"menu_name" example:"Drinks"`
	Categories []Category `json:"categories"`
}
