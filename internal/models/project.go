package models

import "github.com/google/uuid"

// ProjectID is the key holding a project's generated identifier.
const ProjectID = "id"

// ProjectImagePath is the key holding a project's image reference.
// It stays null until an image is uploaded for the project.
const ProjectImagePath = "imagePath"

// NewProject builds a project document from client-supplied fields.
// The id is always generated server-side; any id in fields is
// discarded. imagePath starts null and is only set by an image upload.
func NewProject(fields map[string]any) map[string]any {
	return map[string]any{
		ProjectID:        uuid.New().String(),
		"title":          stringField(fields, "title"),
		"description":    stringField(fields, "description"),
		"techStack":      listField(fields, "techStack"),
		"highlights":     listField(fields, "highlights"),
		"githubUrl":      stringField(fields, "githubUrl"),
		"demoUrl":        stringField(fields, "demoUrl"),
		ProjectImagePath: nil,
	}
}

func stringField(fields map[string]any, key string) any {
	if v, ok := fields[key]; ok && v != nil {
		return v
	}
	return ""
}

func listField(fields map[string]any, key string) any {
	if v, ok := fields[key]; ok && v != nil {
		return v
	}
	return []any{}
}
