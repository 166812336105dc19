package optimistic

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// merge returns a copy of current with changes applied on top. Keys are
// matched against json tags; unknown keys are rejected. Slices and maps in
// changes replace the existing ones instead of being merged into them, so
// the pre-image is never aliased.
func merge[T any](current T, changes map[string]any) (T, error) {
	merged := current

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &merged,
		ZeroFields:  true,
		ErrorUnused: true,
		DecodeHook:  mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return current, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(changes); err != nil {
		return current, fmt.Errorf("%w: %v", ErrInvalidChanges, err)
	}
	return merged, nil
}
