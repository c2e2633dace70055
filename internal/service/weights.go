package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CategoryUnclassified is assigned when no keyword rule matches. Unclassified
// items never enter the weighted index.
const CategoryUnclassified = "unclassified"

// categoryRule places items into a necessities category by case-insensitive
// substring match. Rule order matters: an item matching several needle lists
// takes the first.
type categoryRule struct {
	Category string
	Needles  []string
}

var categoryRules = []categoryRule{
	{Category: "food_at_home", Needles: []string{"bread", "chicken", "rice", "coffee", "potatoes", "banana", "peanut butter", "egg", "milk", "ground beef", "beef"}},
	{Category: "utilities_electric", Needles: []string{"electricity"}},
	{Category: "utilities_gas", Needles: []string{"natural gas", "per therm"}},
	{Category: "transport_fuel", Needles: []string{"gasoline"}},
}

// CategorizeItem maps an item name to at most one category.
func CategorizeItem(name string) string {
	n := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, needle := range rule.Needles {
			if strings.Contains(n, needle) {
				return rule.Category
			}
		}
	}
	return CategoryUnclassified
}

// DefaultWeights returns the conceptual spending shares for the categories
// the basket covers. They are renormalized over the categories actually
// present before use, so adding shelter or healthcare later only requires a
// new entry here.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"food_at_home":       0.45,
		"utilities_electric": 0.20,
		"utilities_gas":      0.15,
		"transport_fuel":     0.20,
	}
}

// LoadWeights merges a user-supplied JSON mapping {category: weight} over the
// defaults. A user entry replaces the default for that category; it does not
// blend. An empty path returns the defaults unchanged.
func LoadWeights(path string) (map[string]float64, error) {
	weights := DefaultWeights()
	if path == "" {
		return weights, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}

	var user map[string]float64
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse weights file %s: %w", path, err)
	}

	for category, weight := range user {
		weights[category] = weight
	}
	return weights, nil
}

// Weighted computes the necessities index over the usable rows: equal weight
// within a category, category weights renormalized over only the categories
// present in the data. Rows whose category carries no weight are ignored.
func Weighted(rows []ComparisonRow, catWeights map[string]float64) (WeightedIndex, error) {
	byCategory := make(map[string][]float64)
	for _, r := range rows {
		category := CategorizeItem(r.Item)
		if _, ok := catWeights[category]; !ok {
			continue
		}
		if !r.Usable() {
			continue
		}
		byCategory[category] = append(byCategory[category], r.Relative())
	}

	if len(byCategory) == 0 {
		return WeightedIndex{}, ErrNoUsableRows
	}

	var totalWeight float64
	for category := range byCategory {
		totalWeight += catWeights[category]
	}

	normalized := make(map[string]float64, len(byCategory))
	for category := range byCategory {
		normalized[category] = catWeights[category] / totalWeight
	}

	var weighted float64
	for category, relatives := range byCategory {
		within := 1.0 / float64(len(relatives))
		var contribution float64
		for _, rel := range relatives {
			contribution += (rel - 1.0) * within
		}
		weighted += normalized[category] * contribution
	}

	return WeightedIndex{PctChange: weighted, Weights: normalized}, nil
}
