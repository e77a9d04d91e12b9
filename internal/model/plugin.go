package model

// Plugin is a project summary from the plugin catalog.
type Plugin struct {
	Slug        string
	Title       string
	Description string
	Downloads   int64
	ProjectType string
}
