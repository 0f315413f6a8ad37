package output

import (
	"fmt"
	"io"
	"os"
	"slices"
)

// ColorModes are the accepted values of the --color flag.
var ColorModes = []string{"auto", "always", "never"}

// ValidateColorMode rejects values other than ColorModes.
func ValidateColorMode(mode string) error {
	if slices.Contains(ColorModes, mode) {
		return nil
	}
	return NewUserError(fmt.Sprintf("invalid --color %q: want auto, always or never", mode))
}

// ResolveColorMode determines the effective isTTY value from the --color
// flag and actual TTY detection:
//   - "never":  always disable colors (returns false)
//   - "always": always enable colors (returns true)
//   - "auto":   use the detected isTTY value (default behavior)
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
