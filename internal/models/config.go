package models

// DefaultConfig returns the empty site configuration document.
func DefaultConfig() map[string]any {
	return map[string]any{
		"skills":         map[string]any{},
		"certifications": []any{},
		"offerings":      []any{},
		"contact_info":   map[string]any{},
	}
}
