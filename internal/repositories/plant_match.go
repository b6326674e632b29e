package repositories

import (
	"strings"

	"herbal/internal/models"
)

// Plant predicates shared by the memory store and the SQLite fallback.
// Case folding is Unicode-aware.

func searchMatcher(query string) func(models.Plant) bool {
	q := strings.ToLower(query)
	return func(p models.Plant) bool {
		return containsFold(p.CommonName, q) ||
			containsFold(p.BotanicalName, q) ||
			containsFold(p.MedicinalUses, q) ||
			containsFold(p.Region, q) ||
			containsFold(p.Category, q)
	}
}

func categoryMatcher(category string) func(models.Plant) bool {
	c := strings.ToLower(category)
	return func(p models.Plant) bool {
		return strings.ToLower(p.Category) == c
	}
}

func regionMatcher(region string) func(models.Plant) bool {
	q := strings.ToLower(region)
	return func(p models.Plant) bool {
		return containsFold(p.Region, q)
	}
}

// containsFold reports whether s contains the already lower-cased substr.
func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}
