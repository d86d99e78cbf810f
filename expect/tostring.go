package expect

import (
	"fmt"
)

// ToString projects row keys and values onto the strings used for matching and messages.
// Byte slices and anything exposing Bytes() are converted byte for byte, so two keys are
// equal exactly when their bytes are.
func ToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case interface{ Bytes() []byte }:
		return string(val.Bytes())
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
