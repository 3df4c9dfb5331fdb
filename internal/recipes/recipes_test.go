package recipes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/entity"
)

var stamppot = Recipe{
	ID:              "stamppot-boerenkool",
	Name:            "Stamppot Boerenkool",
	Description:     "Klassieke winterkost",
	Servings:        4,
	PrepTimeMinutes: 30,
	Ingredients: []Ingredient{
		{Name: "aardappelen", Amount: "1kg", Category: constants.Groente},
		{Name: "boerenkool", Amount: "500g", Category: constants.Groente},
		{Name: "rookworst", Amount: "1 stuk", Category: constants.Vlees},
		{Name: "melk", Amount: "100ml", Category: constants.Zuivel},
	},
	Instructions: []string{"Kook de aardappelen", "Stamp alles fijn"},
	Tags:         []string{"stamppot"},
}

var pastaBolognese = Recipe{
	ID:              "pasta-bolognese",
	Name:            "Pasta Bolognese",
	Description:     "Doordeweekse pasta",
	Servings:        4,
	PrepTimeMinutes: 20,
	Ingredients: []Ingredient{
		{Name: "spaghetti", Amount: "400g", Category: constants.Pasta},
		{Name: "gehakt", Amount: "300g", Category: constants.Vlees},
		{Name: "tomatensaus", Amount: "400ml", Category: constants.Conserven},
	},
	Instructions: []string{"Kook de spaghetti"},
	Tags:         []string{"pasta"},
}

func names(set ...string) map[string]bool {
	out := map[string]bool{}
	for _, s := range set {
		out[s] = true
	}
	return out
}

func categories(set ...constants.ProductCategory) map[constants.ProductCategory]bool {
	out := map[constants.ProductCategory]bool{}
	for _, c := range set {
		out[c] = true
	}
	return out
}

func TestScoreRecipe(t *testing.T) {
	t.Run("name matches score three points each", func(t *testing.T) {
		got := ScoreRecipe(stamppot, names("aardappelen", "boerenkool"), categories())
		assert.Equal(t, 6, got.Score)
		assert.Contains(t, got.MatchedIngredients, "aardappelen")
		assert.Contains(t, got.MatchedIngredients, "boerenkool")
	})

	t.Run("category matches score one point each", func(t *testing.T) {
		got := ScoreRecipe(stamppot, names(), categories(constants.Groente))
		assert.Equal(t, 2, got.Score)
	})

	t.Run("unmatched ingredients are reported missing", func(t *testing.T) {
		got := ScoreRecipe(stamppot, names("aardappelen"), categories())
		assert.Contains(t, got.MissingIngredients, "boerenkool")
		assert.Contains(t, got.MissingIngredients, "rookworst")
		assert.Contains(t, got.MissingIngredients, "melk")
	})

	t.Run("no overlap scores zero", func(t *testing.T) {
		got := ScoreRecipe(stamppot, names(), categories())
		assert.Equal(t, 0, got.Score)
		assert.Len(t, got.MissingIngredients, 4)
	})

	t.Run("name match wins over category match", func(t *testing.T) {
		got := ScoreRecipe(stamppot, names("aardappelen"), categories(constants.Groente))
		// aardappelen by name (3), boerenkool by category (1).
		assert.Equal(t, 4, got.Score)
	})

	t.Run("ingredient name matching ignores case", func(t *testing.T) {
		recipe := stamppot
		recipe.Ingredients = []Ingredient{
			{Name: "Aardappelen", Amount: "1kg", Category: constants.Groente},
		}
		got := ScoreRecipe(recipe, names("aardappelen"), categories())
		assert.Equal(t, 3, got.Score)
	})
}

func TestRankRecipes(t *testing.T) {
	bought := []entity.ReceiptItem{
		{Name: "aardappelen", Price: 1.50, Quantity: 1, Category: constants.Groente},
		{Name: "boerenkool", Price: 1.49, Quantity: 1, Category: constants.Groente},
		{Name: "rookworst", Price: 2.99, Quantity: 1, Category: constants.Vlees},
	}

	t.Run("best match first", func(t *testing.T) {
		ranked := RankRecipes([]Recipe{pastaBolognese, stamppot}, bought)
		require.NotEmpty(t, ranked)
		assert.Equal(t, "stamppot-boerenkool", ranked[0].Recipe.ID)
	})

	t.Run("zero-score recipes are dropped", func(t *testing.T) {
		snacks := []entity.ReceiptItem{
			{Name: "chocola", Price: 2.00, Quantity: 1, Category: constants.Snacks},
		}
		ranked := RankRecipes([]Recipe{stamppot, pastaBolognese}, snacks)
		for _, scored := range ranked {
			assert.Greater(t, scored.Score, 0)
		}
	})

	t.Run("no items means no suggestions", func(t *testing.T) {
		assert.Empty(t, RankRecipes([]Recipe{stamppot}, nil))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads a recipe collection", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "recipes.json")
		payload := `[{
			"id": "stamppot-boerenkool",
			"name": "Stamppot Boerenkool",
			"servings": 4,
			"prepTimeMinutes": 30,
			"ingredients": [{"name": "boerenkool", "amount": "500g", "category": "groente"}],
			"instructions": ["Stamp alles fijn"],
			"tags": ["stamppot"]
		}]`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		got, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Stamppot Boerenkool", got[0].Name)
		assert.Equal(t, constants.Groente, got[0].Ingredients[0].Category)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
