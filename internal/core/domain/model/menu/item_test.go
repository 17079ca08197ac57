package menu_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrink(t *testing.T) {
	t.Run("should create drink", func(t *testing.T) {
		drink, err := menu.NewDrink("Coca-Cola", "Classic Coca-Cola", 330, mustMoney(t, "2.50"), true)

		require.NoError(t, err)
		assert.Equal(t, menu.CategoryDrink, drink.Category())
		assert.True(t, drink.IsCarbonated())
		assert.True(t, drink.IsAvailable())

		price, err := drink.Price()
		require.NoError(t, err)
		assert.Equal(t, "USD 2.50", price.String())
	})

	t.Run("should fail with blank name or non-positive volume", func(t *testing.T) {
		_, err := menu.NewDrink("  ", "", 330, mustMoney(t, "2.50"), false)
		require.Error(t, err)

		_, err = menu.NewDrink("Water", "", 0, mustMoney(t, "1.50"), false)
		require.Error(t, err)
	})

	t.Run("availability toggles", func(t *testing.T) {
		drink, err := menu.NewDrink("Sprite", "", 330, mustMoney(t, "2.50"), true)
		require.NoError(t, err)

		drink.SetAvailable(false)
		assert.False(t, drink.IsAvailable())
	})
}

func TestDessert(t *testing.T) {
	t.Run("should create dessert", func(t *testing.T) {
		dessert, err := menu.NewDessert("Tiramisu", "Coffee and mascarpone", 150, mustMoney(t, "5.99"))

		require.NoError(t, err)
		assert.Equal(t, menu.CategoryDessert, dessert.Category())
		assert.Equal(t, 150, dessert.WeightGrams())
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		_, err := menu.NewDessert("Air", "", 0, mustMoney(t, "1.00"))
		require.Error(t, err)
	})
}

func TestIngredient(t *testing.T) {
	t.Run("stock bookkeeping", func(t *testing.T) {
		ingredient, err := menu.NewIngredient("Mozzarella", mustMoney(t, "1.50"))
		require.NoError(t, err)

		start := ingredient.StockQuantity()
		require.NoError(t, ingredient.AddStock(10))
		require.NoError(t, ingredient.UseStock(start+10))

		assert.False(t, ingredient.IsInStock())
		require.Error(t, ingredient.UseStock(1))
		require.Error(t, ingredient.UseStock(-1))
		require.Error(t, ingredient.AddStock(-1))
	})

	t.Run("equality is by identity", func(t *testing.T) {
		a, err := menu.NewIngredient("Ham", mustMoney(t, "2.00"))
		require.NoError(t, err)
		b, err := menu.NewIngredient("Ham", mustMoney(t, "2.00"))
		require.NoError(t, err)

		assert.True(t, a.IsEqual(a))
		assert.False(t, a.IsEqual(b))
	})
}

func TestStandardCatalog(t *testing.T) {
	t.Run("drinks and desserts are available menu items", func(t *testing.T) {
		drinks, err := menu.StandardDrinks("USD")
		require.NoError(t, err)
		require.NotEmpty(t, drinks)

		desserts, err := menu.StandardDesserts("USD")
		require.NoError(t, err)
		require.NotEmpty(t, desserts)

		items := make([]menu.Item, 0, len(drinks)+len(desserts))
		for _, d := range drinks {
			items = append(items, d)
		}
		for _, d := range desserts {
			items = append(items, d)
		}

		for _, item := range items {
			assert.True(t, item.IsAvailable())
			price, err := item.Price()
			require.NoError(t, err)
			assert.False(t, price.IsZero())
		}
	})
}

func TestEnums(t *testing.T) {
	t.Run("size specs", func(t *testing.T) {
		assert.Equal(t, "Medium", menu.SizeMedium.String())
		assert.Equal(t, 30, menu.SizeMedium.DiameterCm())
		require.NoError(t, menu.SizeMedium.Validate())
		require.Error(t, menu.SizeUnknown.Validate())
	})

	t.Run("dough specs", func(t *testing.T) {
		assert.Equal(t, "Cheese Stuffed", menu.DoughCheeseStuffed.String())
		assert.True(t, menu.DoughThin.Surcharge().IsZero())
		require.Error(t, menu.Dough(77).Validate())
	})

	t.Run("bake specs", func(t *testing.T) {
		assert.Equal(t, "Well Done", menu.BakeWellDone.String())
		require.NoError(t, menu.BakeLight.Validate())
	})

	t.Run("categories", func(t *testing.T) {
		assert.Equal(t, "Pizza", menu.CategoryPizza.String())
		assert.Equal(t, "Beverages", menu.CategoryDrink.Description())
		assert.Equal(t, "Unknown", menu.CategoryUnknown.String())
	})

	t.Run("pizza types", func(t *testing.T) {
		assert.Equal(t, "Meat Lovers", menu.PizzaTypeMeatLovers.String())
		assert.Equal(t, "14.99", menu.PizzaTypeMeatLovers.BasePrice().StringFixed(2))
		require.Error(t, menu.PizzaTypeUnknown.Validate())
	})
}
