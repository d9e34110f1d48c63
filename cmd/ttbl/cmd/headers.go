package cmd

import (
	"fmt"

	"ttbl"
)

func parseHeaders(name string) (ttbl.HeaderStyle, error) {
	switch name {
	case "source":
		return ttbl.HeaderSource, nil
	case "canonical":
		return ttbl.HeaderCanonical, nil
	default:
		return 0, fmt.Errorf("unknown header style %q, expected source or canonical", name)
	}
}
