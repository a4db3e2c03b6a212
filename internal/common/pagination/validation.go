package pagination

import "fmt"

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - offset is negative or greater than config.MaxOffset
//   - limit is less than 1 or greater than config.MaxLimit
//
// The query layer relies on this invariant: limit >= 1 guarantees the
// metadata calculation never divides by zero.
func (p Params) Validate(config Config) error {
	if p.Offset < 0 || p.Offset > config.MaxOffset {
		return fmt.Errorf("offset must be between 0 and %d", config.MaxOffset)
	}
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", config.MaxLimit)
	}
	return nil
}

// WithDefaults applies default values from config to Params.
//
// Rules:
//   - If offset < 0, set to 0
//   - If limit <= 0, set to config.DefaultLimit
//   - If limit > config.MaxLimit, cap to config.MaxLimit
func (p Params) WithDefaults(config Config) Params {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	return p
}
