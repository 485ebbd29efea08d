package offering

import "time"

// EffectivePriceCents resolves the price in effect at the given instant.
// Pure: it only looks at the loaded snapshot, so display and checkout can
// both call it without another persistence round-trip. The early-bird price
// applies while now <= earlyBirdEndAt, inclusive; past the cutoff the regular
// price silently takes over (an elapsed window is not an error).
func (o *Offering) EffectivePriceCents(now time.Time) int64 {
	if o.earlyBirdPriceCents != nil && o.earlyBirdEndAt != nil && !now.After(*o.earlyBirdEndAt) {
		return *o.earlyBirdPriceCents
	}
	return o.regularPriceCents
}

// IsEarlyBirdActive reports whether the early-bird window covers now.
func (o *Offering) IsEarlyBirdActive(now time.Time) bool {
	return o.earlyBirdPriceCents != nil && o.earlyBirdEndAt != nil && !now.After(*o.earlyBirdEndAt)
}
