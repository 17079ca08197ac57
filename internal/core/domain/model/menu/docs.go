// Package menu contains the product side of the pizzeria domain: the Item
// contract every sellable position implements, the Pizza aggregate with its
// size, dough, bake level and toppings, fixed-price Drink and Dessert items,
// and the Ingredient pool backing pizza toppings.
//
// Pizza prices are derived, never stored. A pizza's price is recomputed on
// every read from its base price, size multiplier, dough surcharge and
// topping prices, so orders referencing a pizza always see its current
// configuration.
//
// Pizzas are assembled through the PizzaBuilder, either directly for custom
// pizzas or via the RecipeBook, which prepares the standard recipes and owns
// the shared ingredient pool.
package menu
