package templates

import "github.com/shopspring/decimal"

// Built-in template identifiers.
const (
	Barbershop = "barbershop"
	SnackBar   = "snack-bar"
	Pizzeria   = "pizzeria"
	CoffeeShop = "coffee-shop"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Builtin returns the registry of templates shipped with the service.
func Builtin() *Catalog {
	return MustNewCatalog(builtinDefinitions()...)
}

func builtinDefinitions() []Definition {
	return []Definition{
		{
			ID:          Barbershop,
			DisplayName: "Barbershop",
			Categories: []CategorySpec{
				{Name: "Cuts"},
				{Name: "Beard"},
				{Name: "Treatments"},
			},
			Items: []ItemSpec{
				{Category: "Cuts", Name: "Classic Cut", Description: "Scissor and clipper cut, wash included", Price: price("35.00")},
				{Category: "Cuts", Name: "Skin Fade", Description: "Fade down to the skin with styling", Price: price("40.00")},
				{Category: "Beard", Name: "Beard Trim", Description: "Shape and line-up with hot towel", Price: price("25.00")},
				{Category: "Treatments", Name: "Scalp Hydration", Description: "Deep cleansing and hydration mask", Price: price("45.00")},
			},
		},
		{
			ID:          SnackBar,
			DisplayName: "Snack Bar",
			Categories: []CategorySpec{
				{Name: "Burgers"},
				{Name: "Hot Dogs"},
				{Name: "Sides"},
				{Name: "Drinks"},
			},
			Items: []ItemSpec{
				{Category: "Burgers", Name: "Cheeseburger", Description: "Beef patty, cheddar, pickles", Price: price("18.90")},
				{Category: "Burgers", Name: "Bacon Burger", Description: "Beef patty, bacon, cheddar, barbecue sauce", Price: price("22.90")},
				{Category: "Burgers", Name: "Veggie Burger", Description: "Chickpea patty, lettuce, tomato", Price: price("20.50")},
				{Category: "Hot Dogs", Name: "Classic Hot Dog", Description: "Sausage, mustard, ketchup", Price: price("12.00")},
				{Category: "Hot Dogs", Name: "Loaded Hot Dog", Description: "Sausage, mashed potato, corn, cheese", Price: price("16.50")},
				{Category: "Sides", Name: "French Fries", Price: price("9.99")},
				{Category: "Sides", Name: "Onion Rings", Price: price("11.49")},
				{Category: "Drinks", Name: "Soda Can", Price: price("6.00")},
				{Category: "Drinks", Name: "Fresh Orange Juice", Description: "500 ml", Price: price("9.50")},
			},
		},
		{
			ID:          Pizzeria,
			DisplayName: "Pizzeria",
			Categories: []CategorySpec{
				{Name: "Traditional Pizzas"},
				{Name: "Sweet Pizzas"},
				{Name: "Drinks"},
			},
			Items: []ItemSpec{
				{Category: "Traditional Pizzas", Name: "Margherita", Description: "Tomato sauce, mozzarella, basil", Price: price("49.90")},
				{Category: "Traditional Pizzas", Name: "Pepperoni", Description: "Tomato sauce, mozzarella, pepperoni", Price: price("54.90")},
				{Category: "Traditional Pizzas", Name: "Four Cheese", Description: "Mozzarella, gorgonzola, parmesan, provolone", Price: price("57.90")},
				{Category: "Sweet Pizzas", Name: "Chocolate", Description: "Milk chocolate and strawberries", Price: price("44.90")},
				{Category: "Drinks", Name: "Soda 2L", Price: price("14.00")},
			},
		},
		{
			ID:          CoffeeShop,
			DisplayName: "Coffee Shop",
			Categories: []CategorySpec{
				{Name: "Coffee"},
				{Name: "Pastries"},
			},
			Items: []ItemSpec{
				{Category: "Coffee", Name: "Espresso", Price: price("6.50")},
				{Category: "Coffee", Name: "Cappuccino", Description: "Espresso, steamed milk, foam", Price: price("9.90")},
				{Category: "Coffee", Name: "Cold Brew", Description: "Steeped for 18 hours", Price: price("12.00")},
				{Category: "Pastries", Name: "Croissant", Price: price("8.50")},
				{Category: "Pastries", Name: "Cheese Bread", Description: "Portion of six", Price: price("10.00")},
			},
		},
	}
}
