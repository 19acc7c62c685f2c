package output

import "strings"

// FileEntry represents a file in a tree listing.
type FileEntry struct {
	Path        string
	Description string
}

// RenderFileTree renders a file listing with descriptions aligned at the
// given column.
func RenderFileTree(files []FileEntry, alignColumn int) string {
	var b strings.Builder
	for _, f := range files {
		padding := alignColumn - len(f.Path)
		if padding < 1 {
			padding = 1
		}
		b.WriteString(f.Path)
		b.WriteString(strings.Repeat(" ", padding))
		b.WriteString(f.Description)
		b.WriteString("\n")
	}
	return b.String()
}
