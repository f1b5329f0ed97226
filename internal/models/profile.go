package models

// Profile field names set by upload operations.
const (
	ProfilePhotoPath  = "photo_path"
	ProfileResumePath = "resume_path"
)

// DefaultProfile returns the empty profile document used when no
// profile has been stored yet. Profiles are kept as free-form JSON
// objects so keys added by hand-edited files survive load/save cycles.
func DefaultProfile() map[string]any {
	return map[string]any{
		"name":        "",
		"email":       "",
		"linkedin":    "",
		"github":      "",
		"tagline":     "",
		"about":       "",
		"photo_path":  "",
		"resume_path": "",
	}
}
