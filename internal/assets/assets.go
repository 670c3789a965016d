// Package assets provides the HTML templates and stylesheet for the
// generated legal documents site. Assets are embedded in the binary.
package assets

// AssetLoader abstracts asset retrieval for the pipeline and the driver.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or dots.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the default embedded
// loader. The name should not include the .html extension.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or dots.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
