package model

// SidebagTokens returns the ordered token list, never nil.
func (h *Hero) SidebagTokens() []string {
	if h.SidebagContents == nil {
		return []string{}
	}
	return h.SidebagContents
}

// SidebagCount returns the number of tokens in the sidebag.
func (h *Hero) SidebagCount() int {
	return len(h.SidebagContents)
}

// SidebagFull reports whether the sidebag has reached adjusted capacity.
func (h *Hero) SidebagFull() bool {
	return len(h.SidebagContents) >= h.AdjustedSidebagCapacity()
}

// SidebagSlotsRemaining returns adjusted capacity minus current content.
// Negative when capacity drops below content; tokens are never auto-trimmed.
func (h *Hero) SidebagSlotsRemaining() int {
	return h.AdjustedSidebagCapacity() - len(h.SidebagContents)
}

// AddSidebagToken appends a token when the bag has room. Adding to a full
// bag is a routine outcome of play, not an error: the call is a silent
// no-op and reports whether the token went in.
func (h *Hero) AddSidebagToken(token string) bool {
	if h.SidebagFull() {
		return false
	}
	h.SidebagContents = append(h.SidebagContents, token)
	return true
}

// RemoveSidebagTokenAt removes the token at index. Out-of-range indices,
// negative included, are silent no-ops. Reports whether a token was
// removed.
func (h *Hero) RemoveSidebagTokenAt(index int) bool {
	if index < 0 || index >= len(h.SidebagContents) {
		return false
	}
	h.SidebagContents = append(h.SidebagContents[:index], h.SidebagContents[index+1:]...)
	return true
}
