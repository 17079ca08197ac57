package menu

import (
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// standardToppingPrices maps ingredient names to the price charged when the
// ingredient is added to a pizza as a topping.
func standardToppingPrices() map[string]float64 {
	return map[string]float64{
		"Tomato Sauce": 0.50,
		"BBQ Sauce":    0.75,
		"Mozzarella":   1.50,
		"Parmesan":     1.50,
		"Gorgonzola":   1.50,
		"Goat Cheese":  1.50,
		"Fresh Basil":  0.50,
		"Pepperoni":    2.00,
		"Sausage":      2.00,
		"Bacon":        2.00,
		"Ham":          2.00,
		"Chicken":      2.00,
		"Pineapple":    1.00,
		"Bell Peppers": 1.00,
		"Mushrooms":    1.00,
		"Onions":       0.50,
		"Red Onion":    0.50,
		"Olives":       0.75,
		"Shrimp":       2.50,
		"Mussels":      2.00,
		"Calamari":     2.00,
	}
}

// recipeToppings lists the topping ingredients of every standard recipe.
func recipeToppings() map[PizzaType][]string {
	//nolint:exhaustive // Unknown has no recipe
	return map[PizzaType][]string{
		PizzaTypeMargherita: {"Tomato Sauce", "Mozzarella", "Fresh Basil"},
		PizzaTypePepperoni:  {"Tomato Sauce", "Mozzarella", "Pepperoni"},
		PizzaTypeHawaiian:   {"Tomato Sauce", "Mozzarella", "Ham", "Pineapple"},
		PizzaTypeFourCheese: {"Mozzarella", "Parmesan", "Gorgonzola", "Goat Cheese"},
		PizzaTypeVegetarian: {"Tomato Sauce", "Mozzarella", "Bell Peppers", "Mushrooms", "Onions", "Olives"},
		PizzaTypeMeatLovers: {"Tomato Sauce", "Mozzarella", "Pepperoni", "Sausage", "Bacon", "Ham"},
		PizzaTypeBBQChicken: {"BBQ Sauce", "Mozzarella", "Chicken", "Red Onion"},
		PizzaTypeSeafood:    {"Tomato Sauce", "Mozzarella", "Shrimp", "Mussels", "Calamari"},
	}
}

// RecipeBook knows how to prepare every standard pizza. It owns the shared
// ingredient pool, so stock changes to an ingredient affect all recipes
// using it.
type RecipeBook struct {
	currency    string
	ingredients map[string]*Ingredient
}

// NewRecipeBook creates a RecipeBook with a fully stocked ingredient pool
// priced in the given currency. An empty currency defaults to
// kernel.DefaultCurrency.
func NewRecipeBook(currency string) (*RecipeBook, error) {
	if currency == "" {
		currency = kernel.DefaultCurrency
	}

	book := &RecipeBook{
		currency:    currency,
		ingredients: make(map[string]*Ingredient),
	}

	for name, price := range standardToppingPrices() {
		unitPrice, err := kernel.MoneyFromFloat(price, currency)
		if err != nil {
			return nil, err
		}
		ingredient, err := NewIngredient(name, unitPrice)
		if err != nil {
			return nil, err
		}
		book.ingredients[name] = ingredient
	}

	return book, nil
}

// Ingredient looks up an ingredient from the pool by name.
func (rb *RecipeBook) Ingredient(name string) (*Ingredient, error) {
	ingredient, ok := rb.ingredients[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("ingredient", name)
	}
	return ingredient, nil
}

// Topping builds a topping for the named ingredient at its standard price.
func (rb *RecipeBook) Topping(name string) (Topping, error) {
	ingredient, err := rb.Ingredient(name)
	if err != nil {
		return Topping{}, err
	}

	price, err := kernel.MoneyFromFloat(standardToppingPrices()[name], rb.currency)
	if err != nil {
		return Topping{}, err
	}

	return NewTopping(ingredient, price)
}

// CreatePizza prepares a standard pizza of the given type and size.
// The recipe's name, description, base price and toppings come from the
// pizza type; the dough is traditional and the bake level normal.
func (rb *RecipeBook) CreatePizza(pizzaType PizzaType, size Size) (*Pizza, error) {
	if err := pizzaType.Validate(); err != nil {
		return nil, err
	}
	if err := size.Validate(); err != nil {
		return nil, err
	}

	toppings, ok := recipeToppings()[pizzaType]
	if !ok {
		return nil, errs.NewObjectNotFoundError("recipe", pizzaType.String())
	}

	basePrice, err := kernel.NewMoney(pizzaType.BasePrice(), rb.currency)
	if err != nil {
		return nil, err
	}

	builder := NewPizzaBuilder().
		WithName(pizzaType.String()).
		WithDescription(pizzaType.Description()).
		WithSize(size).
		WithDough(DoughTraditional).
		WithBake(BakeNormal).
		WithBasePrice(basePrice)

	for _, name := range toppings {
		topping, err := rb.Topping(name)
		if err != nil {
			return nil, fmt.Errorf("recipe %s: %w", pizzaType, err)
		}
		builder.AddTopping(topping)
	}

	return builder.Build()
}

// CreateMediumPizza prepares a standard pizza at the default medium size.
func (rb *RecipeBook) CreateMediumPizza(pizzaType PizzaType) (*Pizza, error) {
	return rb.CreatePizza(pizzaType, SizeMedium)
}

// CreateCustomPizza prepares a plain pizza with no toppings, for customers
// who want to start from scratch.
func (rb *RecipeBook) CreateCustomPizza(name string, size Size, basePrice kernel.Money) (*Pizza, error) {
	return NewPizzaBuilder().
		WithName(name).
		WithDescription("Custom pizza").
		WithSize(size).
		WithDough(DoughTraditional).
		WithBake(BakeNormal).
		WithBasePrice(basePrice).
		Build()
}
