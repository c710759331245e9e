package survival

// Recipe is immutable configuration data; nothing mutates it at runtime.
type Recipe struct {
	ID           int            `json:"id" yaml:"id"`
	Result       string         `json:"result" yaml:"result"`
	ResultAmount int            `json:"result_amount" yaml:"result_amount"`
	Ingredients  map[string]int `json:"ingredients" yaml:"ingredients"`
}

func DefaultRecipes() []Recipe {
	return []Recipe{
		{ID: 1, Result: ItemAxe, ResultAmount: 1, Ingredients: map[string]int{ItemDriftwood: 1, ItemMetal: 1}},
		{ID: 2, Result: ItemWall, ResultAmount: 1, Ingredients: map[string]int{ItemWood: 2}},
		{ID: 3, Result: ItemTorch, ResultAmount: 1, Ingredients: map[string]int{ItemWood: 1}},
	}
}

func RecipeByID(recipes []Recipe, id int) (Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

func CanCraft(inv *Inventory, r Recipe) bool {
	for kind, need := range r.Ingredients {
		if inv.Count(kind) < need {
			return false
		}
	}
	return true
}

// Craft is all-or-nothing: every ingredient is checked before any deduction,
// so a failed craft leaves the inventory untouched.
func Craft(inv *Inventory, r Recipe) bool {
	if !CanCraft(inv, r) {
		return false
	}
	for kind, need := range r.Ingredients {
		inv.Remove(kind, need)
	}
	amount := r.ResultAmount
	if amount <= 0 {
		amount = 1
	}
	inv.Add(r.Result, amount)
	return true
}
