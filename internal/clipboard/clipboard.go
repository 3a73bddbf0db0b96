package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// WriteAll copies text to the system clipboard.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("nothing to copy")
	}
	return clipboard.WriteAll(text)
}
