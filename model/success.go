package model

import (
	"errors"
	"fmt"
)

// ErrInvalidPlay is returned when a rush attempt has a down outside 1-4 or a
// non-positive distance. Invalid plays are never coerced into a
// classification; the caller decides whether to skip or abort.
var ErrInvalidPlay = errors.New("invalid play")

// ExplosiveRushYards is the gain at which a rush counts as an explosive play.
const ExplosiveRushYards = 20

// requiredTenths maps early downs to the required fraction of the distance,
// expressed in tenths so thresholds are computed in exact integer arithmetic.
// 3rd and 4th down are not listed because they require the full distance.
var requiredTenths = map[Down]int{
	DownFirst:  4, // 40%
	DownSecond: 6, // 60%
}

// RequiredYards returns the gain needed for a successful rush on the given
// down and distance. On 1st and 2nd down the threshold is the down's fraction
// of the distance rounded half up: a fractional part below .5 truncates, .5
// and above rounds up. On 3rd and 4th down the full distance is required.
func RequiredYards(down Down, distance int) (int, error) {
	if !down.Valid() {
		return 0, fmt.Errorf("%w: down must be between 1 and 4, got %d", ErrInvalidPlay, int(down))
	}
	if distance <= 0 {
		return 0, fmt.Errorf("%w: distance must be positive, got %d", ErrInvalidPlay, distance)
	}

	tenths, ok := requiredTenths[down]
	if !ok {
		// 3rd and 4th down must fully convert.
		return distance, nil
	}

	t := distance * tenths
	required := t / 10
	if t%10 >= 5 {
		required++
	}
	return required, nil
}

// ClassifyRush determines whether a rush attempt was successful. A touchdown
// is always successful regardless of down, distance, or yards gained;
// otherwise the gain must meet the down's required yards. The input is not
// modified. Returns ErrInvalidPlay for out-of-domain downs or distances.
func ClassifyRush(p RushAttempt) (ClassifiedRush, error) {
	required, err := RequiredYards(p.Down, p.Distance)
	if err != nil {
		return ClassifiedRush{}, err
	}

	return ClassifiedRush{
		RushAttempt:   p,
		RequiredYards: required,
		Successful:    p.Touchdown || p.YardsGained >= required,
		Explosive:     p.YardsGained >= ExplosiveRushYards,
	}, nil
}
