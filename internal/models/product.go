// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// StockStatus describes product availability.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLimited    StockStatus = "limited"
	StockPreOrder   StockStatus = "pre_order"
	StockOutOfStock StockStatus = "out_of_stock"
)

// Product is a database-registered catalog item. Most sellable items exist
// only as static image files; a Product row adds price, stock, and 3D-model
// data for the ones the shop chose to register.
type Product struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	CategoryID       uuid.UUID   `json:"category_id"`
	BrandID          *uuid.UUID  `json:"brand_id"`
	Price            float64     `json:"price"`
	OldPrice         *float64    `json:"old_price"`
	StockStatus      StockStatus `json:"stock_status"`
	StockQuantity    int         `json:"stock_quantity"`
	MainImage        string      `json:"main_image"`
	Image2           string      `json:"image_2"`
	Image3           string      `json:"image_3"`
	Weight           string      `json:"weight"`
	Dimensions       string      `json:"dimensions"`
	Material         string      `json:"material"`
	Color            string      `json:"color"`
	Size             string      `json:"size"`
	SketchfabModelID string      `json:"sketchfab_model_id"`
	IsFeatured       bool        `json:"is_featured"`
	IsNew            bool        `json:"is_new"`
	IsActive         bool        `json:"is_active"`
	MetaTitle        string      `json:"meta_title"`
	MetaDescription  string      `json:"meta_description"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// URL returns the public detail path for the product.
func (p *Product) URL() string {
	return "/urun/" + p.Slug
}

// DiscountPercentage returns the rounded discount relative to OldPrice,
// or 0 when no old price is set or it isn't higher than the current price.
func (p *Product) DiscountPercentage() int {
	if p.OldPrice == nil || *p.OldPrice <= p.Price {
		return 0
	}
	return int(math.Round((*p.OldPrice - p.Price) / *p.OldPrice * 100))
}

// HasSketchfabModel reports whether a usable Sketchfab model is configured.
func (p *Product) HasSketchfabModel() bool {
	return ExtractSketchfabID(p.SketchfabModelID) != ""
}

// SketchfabEmbedURL returns the interactive embed URL for the product's 3D
// model, or "" when none is configured.
func (p *Product) SketchfabEmbedURL() string {
	return SketchfabEmbedURL(p.SketchfabModelID)
}
