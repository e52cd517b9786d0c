package content

// Filter keeps the screens matching screenID. An empty screenID keeps all of them.
func Filter(items []Item, screenID string) []Item {
	if screenID == "" {
		return items
	}
	var out []Item
	for _, it := range items {
		if it.ID == screenID {
			out = append(out, it)
		}
	}
	return out
}
