package launch

import (
	"fmt"
	"strings"
)

const checkpointFlag = "--pathCheckpoint"

// ExtractCheckpointPath scans a raw argument list for the --pathCheckpoint
// value, accepting both the two-token and the = form. Every other token is
// ignored: the list belongs to the trainer, and unknown flags are its
// business, not ours. The value is treated as an opaque path string.
func ExtractCheckpointPath(args []string) (string, error) {
	for i, arg := range args {
		switch {
		case arg == checkpointFlag:
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s given without a value", checkpointFlag)
			}
			return args[i+1], nil
		case strings.HasPrefix(arg, checkpointFlag+"="):
			val := strings.TrimPrefix(arg, checkpointFlag+"=")
			if val == "" {
				return "", fmt.Errorf("%s given without a value", checkpointFlag)
			}
			return val, nil
		}
	}
	return "", fmt.Errorf("%s is required", checkpointFlag)
}
