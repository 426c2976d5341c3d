package cmd

import (
	"fmt"
	"strconv"

	"github.com/waltertaya/codelearn/client"
)

// parseID parses a positional numeric id, naming what it identifies on failure.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q: must be an integer", what, arg)
	}
	return id, nil
}

func validatePage(page client.Page) error {
	if page.Limit < 0 {
		return fmt.Errorf("--limit cannot be negative")
	}
	if page.Offset < 0 {
		return fmt.Errorf("--offset cannot be negative")
	}
	return nil
}
