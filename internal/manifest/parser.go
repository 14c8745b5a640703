package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Parse decodes package.json bytes.
func Parse(data []byte) (*PackageJSON, error) {
	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &pkg, nil
}

// ParseFile reads and decodes a package.json file.
func ParseFile(path string) (*PackageJSON, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	pkg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkg, nil
}

// QuoteString renders s as a JSON string literal, quotes included. HTML
// characters are left alone so names like "a&b" stay readable on disk.
func QuoteString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("quoting %q: %w", s, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
