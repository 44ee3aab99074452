package scrape

// Seed identifies one piece type to acquire: its base catalog element and
// the label it is filed under.
type Seed struct {
	BaseID string
	Label  string
}

// DefaultSeeds lists the known brick and plate base elements the shop
// exposes. The engine downstream derives everything else from the labels.
var DefaultSeeds = []Seed{
	{BaseID: "3005", Label: "BRICK 1X1"},
	{BaseID: "3004", Label: "BRICK 1X2"},
	{BaseID: "3622", Label: "BRICK 1X3"},
	{BaseID: "3010", Label: "BRICK 1X4"},
	{BaseID: "3003", Label: "BRICK 2X2"},
	{BaseID: "3001", Label: "BRICK 2X4"},
	{BaseID: "3024", Label: "PLATE 1X1"},
	{BaseID: "3023", Label: "PLATE 1X2"},
	{BaseID: "3623", Label: "PLATE 1X3"},
	{BaseID: "3710", Label: "PLATE 1X4"},
	{BaseID: "3022", Label: "PLATE 2X2"},
	{BaseID: "3020", Label: "PLATE 2X4"},
}

// FilterSeeds keeps the seeds whose label is in only. An empty filter keeps
// everything. Unknown labels are ignored; the command layer reports them.
func FilterSeeds(seeds []Seed, only []string) []Seed {
	if len(only) == 0 {
		return seeds
	}
	wanted := make(map[string]bool, len(only))
	for _, label := range only {
		wanted[label] = true
	}
	var filtered []Seed
	for _, seed := range seeds {
		if wanted[seed.Label] {
			filtered = append(filtered, seed)
		}
	}
	return filtered
}
