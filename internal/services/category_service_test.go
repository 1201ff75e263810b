package services

import (
	"testing"

	"fortnight/internal/models"
	"fortnight/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	category, err := svc.CreateCategory(CategoryInput{
		Name:      "Dining Out",
		Type:      models.CategoryTypeExpense,
		Color:     "#f59e0b",
		Icon:      "utensils",
		SortOrder: 3,
	})
	testutil.AssertNoError(t, err)

	if category.ID == "" {
		t.Fatal("expected non-empty category ID")
	}
	if category.IsDefault {
		t.Error("user-created category must not be default")
	}
	if category.IsTransfer {
		t.Error("user-created category must not be a transfer category")
	}
}

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	second, err := svc.CreateCategory(CategoryInput{Name: "B", Type: models.CategoryTypeExpense, Color: "#111111", SortOrder: 2})
	testutil.AssertNoError(t, err)
	first, err := svc.CreateCategory(CategoryInput{Name: "A", Type: models.CategoryTypeExpense, Color: "#222222", SortOrder: 1})
	testutil.AssertNoError(t, err)

	categories, err := svc.ListCategories()
	testutil.AssertNoError(t, err)

	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].ID != first.ID || categories[1].ID != second.ID {
		t.Error("expected categories ordered by sort order")
	}
}

func TestUpdateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

	color := "#10b981"
	updated, err := svc.UpdateCategory(category.ID, CategoryUpdate{Color: &color})
	testutil.AssertNoError(t, err)

	if updated.Color != color {
		t.Errorf("expected color %s, got %s", color, updated.Color)
	}
	if updated.Name != category.Name {
		t.Error("expected untouched fields to survive the update")
	}
}

func TestDeleteCategory(t *testing.T) {
	t.Run("user_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		testutil.AssertNoError(t, svc.DeleteCategory(category.ID))

		_, err := svc.GetCategoryByID(category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("default_category_protected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		seeded := &models.Category{Name: "Rent", Type: models.CategoryTypeExpense, IsDefault: true}
		testutil.AssertNoError(t, db.Create(seeded).Error)

		err := svc.DeleteCategory(seeded.ID)
		testutil.AssertAppError(t, err, "DEFAULT_CATEGORY")

		_, err = svc.GetCategoryByID(seeded.ID)
		testutil.AssertNoError(t, err)
	})
}
