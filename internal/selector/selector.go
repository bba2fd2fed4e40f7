// Package selector resolves a category to one sound entry from the active
// pack, avoiding immediate repetition.
package selector

import (
	"math/rand/v2"

	"github.com/rbright/claxon/internal/category"
	"github.com/rbright/claxon/internal/pack"
	"github.com/rbright/claxon/internal/state"
)

// Pick resolves cat through the alias table and chooses one sound entry from
// the manifest. With more than one entry available, the previously chosen
// index is excluded so two consecutive picks never repeat. The chosen index is
// recorded in s; the caller persists. The second return is false when the
// category is unknown or has no sounds, which is silence, not an error.
func Pick(cat category.Category, m pack.Manifest, s *state.State, rng *rand.Rand) (pack.Sound, bool) {
	resolved, ok := category.Resolve(cat)
	if !ok {
		return pack.Sound{}, false
	}

	sounds := m.Sounds(resolved)
	if len(sounds) == 0 {
		return pack.Sound{}, false
	}
	if len(sounds) == 1 {
		s.LastSoundIndex[string(resolved)] = 0
		return sounds[0], true
	}

	last, played := s.LastSoundIndex[string(resolved)]
	if !played || last < 0 || last >= len(sounds) {
		last = -1
	}

	idx := rng.IntN(len(sounds))
	if last >= 0 {
		// Draw from the N-1 entries that are not the previous pick.
		idx = rng.IntN(len(sounds) - 1)
		if idx >= last {
			idx++
		}
	}

	s.LastSoundIndex[string(resolved)] = idx
	return sounds[idx], true
}
