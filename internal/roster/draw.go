package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Writes the drawn team order next to the input file.
//
// The file is named <input>.drawN where N is the lowest
// number starting at 0 that is not yet taken.
// Returns the path of the written file.
func SaveDraw(inputPath string, teams []string) (string, error) {
	path, err := nextDrawPath(inputPath)
	if err != nil {
		return "", err
	}
	content := strings.Join(teams, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write draw: %w", err)
	}
	return path, nil
}

func nextDrawPath(inputPath string) (string, error) {
	for i := 0; ; i++ {
		path := fmt.Sprintf("%s.draw%d", inputPath, i)
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
}
