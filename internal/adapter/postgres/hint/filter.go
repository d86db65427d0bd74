package hint

import "github.com/heartmarshall/nihongo-hints/internal/domain"

// Filter narrows List. Zero values mean "no filter".
type Filter struct {
	Direction  domain.HintDirection
	ActionWord string
	ObjectWord string
	Source     string

	// Limit is the maximum number of rows. Default: 100, max: 1000.
	Limit int
	// Offset is the number of rows to skip.
	Offset int
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
