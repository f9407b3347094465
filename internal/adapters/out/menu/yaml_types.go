package menu

// File is the YAML form of a menu.
type File struct {
	Version    string          `yaml:"version"`
	Defaults   Defaults        `yaml:"defaults"`
	Crusts     []ItemSpec      `yaml:"crusts"`
	Sauces     []ItemSpec      `yaml:"sauces"`
	Toppings   []ItemSpec      `yaml:"toppings"`
	Pizzas     []PizzaSpec     `yaml:"pizzas"`
	Promotions []PromotionSpec `yaml:"promotions"`
}

// Defaults apply to every pizza that leaves the field empty.
type Defaults struct {
	Crust     string  `yaml:"crust"`
	Sauce     string  `yaml:"sauce"`
	BasePrice float64 `yaml:"base_price"`
}

// ItemSpec describes one customization option.
type ItemSpec struct {
	Name      string  `yaml:"name"`
	Price     float64 `yaml:"price"`
	Thickness string  `yaml:"thickness,omitempty"`
	// Unavailable lists the item without offering it.
	Unavailable bool `yaml:"unavailable,omitempty"`
}

// PizzaSpec describes a predefined pizza by the names of its components.
type PizzaSpec struct {
	Name      string   `yaml:"name"`
	Crust     string   `yaml:"crust,omitempty"`
	Sauce     string   `yaml:"sauce,omitempty"`
	BasePrice float64  `yaml:"base_price,omitempty"`
	Toppings  []string `yaml:"toppings,omitempty"`
}

// PromotionSpec describes a promotion code. The window is either absolute
// (Start and End as YYYY-MM-DD) or relative to the load date.
type PromotionSpec struct {
	Code        string  `yaml:"code"`
	Description string  `yaml:"description"`
	Percentage  float64 `yaml:"percentage"`
	Start       string  `yaml:"start,omitempty"`
	End         string  `yaml:"end,omitempty"`
	ValidMonths int     `yaml:"valid_months,omitempty"`
	ValidDays   int     `yaml:"valid_days,omitempty"`
	Inactive    bool    `yaml:"inactive,omitempty"`
}
