package menu

import (
	"pizzeria/internal/core/domain/model/kernel"
)

// StandardDrinks builds the fixed drink lineup priced in the given currency.
func StandardDrinks(currency string) ([]*Drink, error) {
	specs := []struct {
		name        string
		description string
		volumeMl    int
		price       float64
		carbonated  bool
	}{
		{"Coca-Cola", "Classic Coca-Cola", 330, 2.50, true},
		{"Sprite", "Lemon-lime soda", 330, 2.50, true},
		{"Fanta", "Orange flavored soda", 330, 2.50, true},
		{"Water", "Still mineral water", 500, 1.50, false},
		{"Sparkling Water", "Carbonated mineral water", 500, 1.75, true},
		{"Orange Juice", "Fresh orange juice", 250, 3.00, false},
		{"Apple Juice", "Fresh apple juice", 250, 3.00, false},
		{"Iced Tea", "Lemon flavored iced tea", 330, 2.75, false},
	}

	drinks := make([]*Drink, 0, len(specs))
	for _, spec := range specs {
		price, err := kernel.MoneyFromFloat(spec.price, currency)
		if err != nil {
			return nil, err
		}
		drink, err := NewDrink(spec.name, spec.description, spec.volumeMl, price, spec.carbonated)
		if err != nil {
			return nil, err
		}
		drinks = append(drinks, drink)
	}

	return drinks, nil
}

// StandardDesserts builds the fixed dessert lineup priced in the given currency.
func StandardDesserts(currency string) ([]*Dessert, error) {
	specs := []struct {
		name        string
		description string
		weightGrams int
		price       float64
	}{
		{"Tiramisu", "Classic Italian dessert with coffee and mascarpone", 150, 5.99},
		{"Cheesecake", "New York style cheesecake", 120, 5.50},
		{"Chocolate Cake", "Rich chocolate cake", 130, 5.75},
		{"Ice Cream", "Vanilla ice cream", 100, 3.50},
		{"Brownie", "Chocolate brownie", 80, 3.99},
		{"Panna Cotta", "Italian cream dessert with berry sauce", 120, 4.99},
		{"Cannoli", "Sicilian pastry with sweet ricotta filling", 90, 4.50},
	}

	desserts := make([]*Dessert, 0, len(specs))
	for _, spec := range specs {
		price, err := kernel.MoneyFromFloat(spec.price, currency)
		if err != nil {
			return nil, err
		}
		dessert, err := NewDessert(spec.name, spec.description, spec.weightGrams, price)
		if err != nil {
			return nil, err
		}
		desserts = append(desserts, dessert)
	}

	return desserts, nil
}
