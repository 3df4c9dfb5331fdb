// Package recipes suggests recipes based on what a receipt shows was
// actually bought. Matching is heuristic: an exact ingredient name hit
// weighs more than merely having something from the same aisle.
package recipes

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/entity"
)

type Ingredient struct {
	Name     string                    `json:"name"`
	Amount   string                    `json:"amount"`
	Category constants.ProductCategory `json:"category"`
}

type Recipe struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Servings        int          `json:"servings"`
	PrepTimeMinutes int          `json:"prepTimeMinutes"`
	Ingredients     []Ingredient `json:"ingredients"`
	Instructions    []string     `json:"instructions"`
	Tags            []string     `json:"tags"`
}

// Score is the match result for one recipe against a set of purchases.
type Score struct {
	Recipe             Recipe
	Score              int
	MatchedIngredients []string
	MissingIngredients []string
}

const (
	nameMatchPoints     = 3
	categoryMatchPoints = 1
)

// ScoreRecipe scores one recipe against lowercased purchased item names
// and the set of purchased categories. A name hit counts for more than a
// category hit; an ingredient never scores both.
func ScoreRecipe(recipe Recipe, purchasedNames map[string]bool, purchasedCategories map[constants.ProductCategory]bool) Score {
	scored := Score{Recipe: recipe}
	for _, ing := range recipe.Ingredients {
		switch {
		case purchasedNames[strings.ToLower(ing.Name)]:
			scored.Score += nameMatchPoints
			scored.MatchedIngredients = append(scored.MatchedIngredients, ing.Name)
		case purchasedCategories[ing.Category]:
			scored.Score += categoryMatchPoints
			scored.MatchedIngredients = append(scored.MatchedIngredients, ing.Name)
		default:
			scored.MissingIngredients = append(scored.MissingIngredients, ing.Name)
		}
	}
	return scored
}

// RankRecipes scores every recipe against the receipt items, drops the
// ones with no overlap at all and returns the rest best-first.
func RankRecipes(all []Recipe, items []entity.ReceiptItem) []Score {
	purchasedNames := make(map[string]bool, len(items))
	purchasedCategories := make(map[constants.ProductCategory]bool, len(items))
	for _, item := range items {
		purchasedNames[strings.ToLower(item.Name)] = true
		purchasedCategories[item.Category] = true
	}

	ranked := make([]Score, 0, len(all))
	for _, recipe := range all {
		if scored := ScoreRecipe(recipe, purchasedNames, purchasedCategories); scored.Score > 0 {
			ranked = append(ranked, scored)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// LoadFile reads a JSON recipe collection from disk.
func LoadFile(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}
	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("parse recipes %s: %w", path, err)
	}
	return recipes, nil
}
