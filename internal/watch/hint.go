package watch

import "sync"

// HintCell holds the hint of the most recently failed exercise.
// The watch loop writes it after each failed pass and the shell reads it on
// demand. Access is serialized; the last write wins and no history is kept.
type HintCell struct {
	mu   sync.RWMutex
	text string
}

// NewHintCell creates an empty HintCell
func NewHintCell() *HintCell {
	return &HintCell{}
}

// Set replaces the stored hint
func (h *HintCell) Set(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.text = text
}

// Get returns the stored hint, or "" when empty
func (h *HintCell) Get() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.text
}

// Clear empties the cell
func (h *HintCell) Clear() {
	h.Set("")
}
