package utils

// IndexOf returns the index of the first occurrence of itemID, or -1
func IndexOf(inventory []string, itemID string) int {
	for i, id := range inventory {
		if id == itemID {
			return i
		}
	}
	return -1
}

// RemoveFirst returns a new inventory with the first occurrence of itemID removed.
// The second return value is false if itemID was not present, in which case
// the original slice is returned unchanged.
func RemoveFirst(inventory []string, itemID string) ([]string, bool) {
	idx := IndexOf(inventory, itemID)
	if idx < 0 {
		return inventory, false
	}
	out := make([]string, 0, len(inventory)-1)
	out = append(out, inventory[:idx]...)
	out = append(out, inventory[idx+1:]...)
	return out, true
}

// CountByID groups an inventory into item ID -> occurrences
func CountByID(inventory []string) map[string]int {
	counts := make(map[string]int, len(inventory))
	for _, id := range inventory {
		counts[id]++
	}
	return counts
}
