package ingredient

// Ingredient is read-only in this system: rows come from the seed catalog
// and are only referenced by burger recipes, never mutated through the API.
type Ingredient struct {
	ID           int64
	Name         string
	Manufacturer string
}
