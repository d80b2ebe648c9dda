package options

import (
	"fmt"
	"strconv"
)

// ParseIndex reads a zero-based item index from a command argument.
func ParseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not an item index", arg)
	}
	if i < 0 {
		return 0, fmt.Errorf("item index must not be negative, got %d", i)
	}
	return i, nil
}
