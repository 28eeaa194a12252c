package flood

import "errors"

// ErrLeak indicates a flood reached the outside sentinel leaf, or a leaf
// already claimed by a different occupant — the world is not sealed.
// Fatal for the current entity unless noFlood is configured (§4.5).
var ErrLeak = errors.New("flood: occupant reaches unsealed space")
