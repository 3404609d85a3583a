package site

import "strings"

// The presence checks below are literal substrings matching exactly the
// tags RepairHTML inserts, which is what makes a second repair pass a
// no-op. A semantically equivalent tag written differently (attribute
// order, quoting) is not detected; that is an accepted limitation of
// substring matching.
const (
	stylesheetTag = `<link rel="stylesheet" href="style.css">`
	scriptTag     = `<script src="script.js"></script>`

	stylesheetCheck = `<link rel="stylesheet"`
	scriptCheck     = `<script src="script.js"`
)

// RepairHTML ensures the markup references style.css before </head> and
// script.js before </body>, inserting each tag only when its check
// substring is absent. If a closing tag itself is missing the insertion
// silently does nothing.
func RepairHTML(html string) string {
	if !strings.Contains(html, stylesheetCheck) {
		html = strings.Replace(html, "</head>", "  "+stylesheetTag+"\n</head>", 1)
	}
	if !strings.Contains(html, scriptCheck) {
		html = strings.Replace(html, "</body>", "  "+scriptTag+"\n</body>", 1)
	}
	return html
}
