// Package images embeds synthetic JPEG files used by the exifer tests.
package images

import (
	"embed"
)

//go:embed *.jpg
var contents embed.FS

// Names returns the embedded image names in lexical order
func Names() []string {
	entries, _ := contents.ReadDir(".")
	result := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			result = append(result, e.Name())
		}
	}
	return result
}

// ReadFile returns a private copy of the named image
func ReadFile(name string) ([]byte, error) {
	return contents.ReadFile(name)
}
