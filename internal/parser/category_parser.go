package parser

import (
	"fmt"
	"strings"

	"github.com/balkashynov/safehours/internal/models"
)

// categoryAliases maps lowercase spellings to categories
var categoryAliases = map[string]models.Category{
	"flight":   models.CategoryFlight,
	"flt":      models.CategoryFlight,
	"fly":      models.CategoryFlight,
	"pre-post": models.CategoryPrePost,
	"prepost":  models.CategoryPrePost,
	"pre":      models.CategoryPrePost,
	"post":     models.CategoryPrePost,
	"ground":   models.CategoryGround,
	"gnd":      models.CategoryGround,
	"class":    models.CategoryClass,
	"other":    models.CategoryOther,
}

// ParseCategory normalizes a category name. Matching is case insensitive.
func ParseCategory(input string) (models.Category, error) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return "", fmt.Errorf("activity is required")
	}
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown activity %q. Use: %s", input, categoryList())
}

// IsCategory reports whether input names a category
func IsCategory(input string) bool {
	_, ok := categoryAliases[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

func categoryList() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
