package conversions

// Ingredient is a baking ingredient with its weight per US cup.
type Ingredient struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	GramsPerCup float64 `json:"grams_per_cup"`
}

var ingredients = []Ingredient{
	{ID: "flour", Name: "All-Purpose Flour", GramsPerCup: 120},
	{ID: "sugar", Name: "Granulated Sugar", GramsPerCup: 200},
	{ID: "butter", Name: "Butter", GramsPerCup: 227},
	{ID: "water", Name: "Water", GramsPerCup: 236.588},
}

// Ingredients returns the kitchen calculator ingredients.
func Ingredients() []Ingredient {
	out := make([]Ingredient, len(ingredients))
	copy(out, ingredients)
	return out
}

// IngredientByID looks up an ingredient.
func IngredientByID(id string) (Ingredient, bool) {
	for _, in := range ingredients {
		if in.ID == id {
			return in, true
		}
	}
	return Ingredient{}, false
}

// CupsToGrams converts a volume in cups to grams of the ingredient.
func (in Ingredient) CupsToGrams(cups float64) float64 {
	return cups * in.GramsPerCup
}

// GramsToCups converts grams of the ingredient to cups.
func (in Ingredient) GramsToCups(grams float64) float64 {
	return grams / in.GramsPerCup
}
