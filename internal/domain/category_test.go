package domain

import "testing"

func TestNewCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := NewCategory(c.String())
		if err != nil {
			t.Errorf("NewCategory(%q) unexpected error: %v", c, err)
		}
		if got != c {
			t.Errorf("NewCategory(%q) = %q", c, got)
		}
	}
}

func TestCategoryValidateRejectsUnknown(t *testing.T) {
	for _, bad := range []string{"", "fullstack", "FRONTEND", "ops"} {
		if _, err := NewCategory(bad); err == nil {
			t.Errorf("NewCategory(%q) expected error, got none", bad)
		}
	}
}

func TestAllCategoriesEndsWithFallback(t *testing.T) {
	all := AllCategories()
	if all[len(all)-1] != CategoryGeneral {
		t.Error("fallback category should be listed last")
	}
}
