package model

// DownSummary is the attempts/successes/rate triple for a single down.
// Rate is nil when there are no attempts.
type DownSummary struct {
	Attempts  int      `json:"attempts"`
	Successes int      `json:"successes"`
	Rate      *float64 `json:"rate"`
}

// SuccessSummary is the rollup of a sequence of classified rushes. OverallRate
// and YardsPerAttempt are nil when there are no attempts so that "no data" is
// never reported as 0%. ByDown only contains entries for downs that appear in
// the input.
type SuccessSummary struct {
	TotalAttempts      int                  `json:"total_attempts"`
	SuccessfulAttempts int                  `json:"successful_attempts"`
	ExplosiveAttempts  int                  `json:"explosive_attempts"`
	TotalYards         int                  `json:"total_yards"`
	OverallRate        *float64             `json:"overall_rate"`
	YardsPerAttempt    *float64             `json:"yards_per_attempt"`
	ByDown             map[Down]DownSummary `json:"by_down"`
}

// Aggregate folds classified rushes into a SuccessSummary. The result depends
// only on the counts, not the input order, so any permutation of the same
// plays produces an identical summary.
func Aggregate(plays []ClassifiedRush) SuccessSummary {
	s := SuccessSummary{
		TotalAttempts: len(plays),
		ByDown:        make(map[Down]DownSummary),
	}

	for _, p := range plays {
		d := s.ByDown[p.Down]
		d.Attempts++
		if p.Successful {
			s.SuccessfulAttempts++
			d.Successes++
		}
		if p.Explosive {
			s.ExplosiveAttempts++
		}
		s.TotalYards += p.YardsGained
		s.ByDown[p.Down] = d
	}

	for down, d := range s.ByDown {
		d.Rate = rate(d.Successes, d.Attempts)
		s.ByDown[down] = d
	}
	s.OverallRate = rate(s.SuccessfulAttempts, s.TotalAttempts)
	if s.TotalAttempts > 0 {
		ypa := float64(s.TotalYards) / float64(s.TotalAttempts)
		s.YardsPerAttempt = &ypa
	}

	return s
}

// Merge combines two summaries by summing their counts and recomputing the
// rates, so per-game summaries can be rolled up into a season summary without
// revisiting the underlying plays.
func Merge(a, b SuccessSummary) SuccessSummary {
	m := SuccessSummary{
		TotalAttempts:      a.TotalAttempts + b.TotalAttempts,
		SuccessfulAttempts: a.SuccessfulAttempts + b.SuccessfulAttempts,
		ExplosiveAttempts:  a.ExplosiveAttempts + b.ExplosiveAttempts,
		TotalYards:         a.TotalYards + b.TotalYards,
		ByDown:             make(map[Down]DownSummary),
	}

	for _, src := range []map[Down]DownSummary{a.ByDown, b.ByDown} {
		for down, d := range src {
			t := m.ByDown[down]
			t.Attempts += d.Attempts
			t.Successes += d.Successes
			m.ByDown[down] = t
		}
	}
	for down, d := range m.ByDown {
		d.Rate = rate(d.Successes, d.Attempts)
		m.ByDown[down] = d
	}

	m.OverallRate = rate(m.SuccessfulAttempts, m.TotalAttempts)
	if m.TotalAttempts > 0 {
		ypa := float64(m.TotalYards) / float64(m.TotalAttempts)
		m.YardsPerAttempt = &ypa
	}
	return m
}

func rate(successes, attempts int) *float64 {
	if attempts == 0 {
		return nil
	}
	r := float64(successes) / float64(attempts)
	return &r
}
