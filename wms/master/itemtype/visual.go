package itemtype

// Visual is the presentation hint the dashboards use to render an item type.
// Resolution is deterministic: the same category and position always yield
// the same icon and gradient, so cards keep their look across reloads.
type Visual struct {
	Icon     string `json:"icon"`
	Gradient string `json:"gradient"`
}

var categoryIcons = map[string]string{
	CategoryDevices:     "terminal",
	CategoryPapers:      "receipt",
	CategorySim:         "sim-card",
	CategoryAccessories: "plug",
	CategoryOther:       "box",
}

var categoryGradients = map[string][]string{
	CategoryDevices: {
		"from-blue-500 to-indigo-600",
		"from-sky-500 to-blue-600",
		"from-indigo-500 to-purple-600",
	},
	CategoryPapers: {
		"from-amber-400 to-orange-500",
		"from-yellow-400 to-amber-500",
	},
	CategorySim: {
		"from-emerald-400 to-teal-500",
		"from-green-400 to-emerald-500",
	},
	CategoryAccessories: {
		"from-rose-400 to-pink-500",
		"from-red-400 to-rose-500",
	},
	CategoryOther: {
		"from-slate-400 to-gray-500",
	},
}

// ResolveVisual maps (category, index-within-category) to a Visual.
// Unknown categories fall back to the "other" set.
func ResolveVisual(category string, index int) Visual {
	icon, ok := categoryIcons[category]
	if !ok {
		icon = categoryIcons[CategoryOther]
		category = CategoryOther
	}

	gradients := categoryGradients[category]
	if index < 0 {
		index = 0
	}

	return Visual{
		Icon:     icon,
		Gradient: gradients[index%len(gradients)],
	}
}
