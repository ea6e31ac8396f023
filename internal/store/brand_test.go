// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"ihsantack/internal/models"
)

func TestBrandStore_CreateAndLookup(t *testing.T) {
	db := testDB(t)
	s := NewBrandStore(db)

	created, err := s.Create(&models.Brand{
		Name:     "Test Anadolu Saraciye",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { s.Delete(created.ID) })

	if created.Slug != "test-anadolu-saraciye" {
		t.Errorf("slug = %q, want test-anadolu-saraciye", created.Slug)
	}

	bySlug, err := s.ActiveBySlug("test-anadolu-saraciye")
	if err != nil {
		t.Fatalf("ActiveBySlug: %v", err)
	}
	if bySlug == nil || bySlug.ID != created.ID {
		t.Fatal("ActiveBySlug did not return the created brand")
	}

	byID, err := s.ByID(created.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if byID == nil || byID.Name != "Test Anadolu Saraciye" {
		t.Fatal("ByID did not return the created brand")
	}
}

func TestBrandStore_DeleteNullsProductReference(t *testing.T) {
	db := testDB(t)
	brands := NewBrandStore(db)
	products := NewProductStore(db)

	category := createTestCategory(t, NewCategoryStore(db), "Test Marka Kategorisi")
	t.Cleanup(func() { cleanCategories(t, db, category.Slug) })

	brand, err := brands.Create(&models.Brand{Name: "Test Silinen Marka", IsActive: true})
	if err != nil {
		t.Fatalf("create brand: %v", err)
	}

	product, err := products.Create(&models.Product{
		Name:       "Test Markalı Kamçı",
		CategoryID: category.ID,
		BrandID:    &brand.ID,
		Price:      90,
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	t.Cleanup(func() { cleanProducts(t, db, product.Slug) })

	if err := brands.Delete(brand.ID); err != nil {
		t.Fatalf("delete brand: %v", err)
	}

	after, err := products.ActiveBySlug(product.Slug)
	if err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if after == nil {
		t.Fatal("product disappeared with its brand")
	}
	if after.BrandID != nil {
		t.Errorf("brand reference = %v, want nil after brand deletion", after.BrandID)
	}
}
