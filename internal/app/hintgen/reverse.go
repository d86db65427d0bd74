package hintgen

import "github.com/heartmarshall/nihongo-hints/internal/domain"

// DeriveReverse builds objectWord → actionWord hints by reusing the forward
// hint text unchanged. A forward hint is written from the action side, so the
// reverse text is an approximation rather than a hint generated for that
// direction.
func DeriveReverse(forward domain.HintSet) domain.HintSet {
	return forward.Reverse()
}
