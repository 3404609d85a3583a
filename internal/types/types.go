package types

// Canonical filenames the generated markup must reference and the archive
// entries are written under.
const (
	HTMLFilename = "index.html"
	CSSFilename  = "style.css"
	JSFilename   = "script.js"

	// ArchiveName is the filename offered to the browser for the zip.
	ArchiveName = "portfolio_website.zip"
)

// Bundle holds the three text blobs of one generated portfolio site.
// CSS and JS may legitimately be empty; only HTML is required.
type Bundle struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}
