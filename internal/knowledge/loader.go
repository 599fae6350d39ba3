package knowledge

import (
	"fmt"
	"os"
	"strings"
)

// LoadText reads a plain-text file into a string. Invalid UTF-8 byte
// sequences are dropped rather than rejected.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
