package bench

import "time"

// Summary aggregates the timings of repeated runs.
type Summary struct {
	Runs  int
	Total int64
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
}

func Summarize(results []Result) Summary {
	var s Summary
	if len(results) == 0 {
		return s
	}
	s.Runs = len(results)
	s.Total = results[0].Total
	s.Min = results[0].Elapsed
	var sum time.Duration
	for _, r := range results {
		if r.Elapsed < s.Min {
			s.Min = r.Elapsed
		}
		if r.Elapsed > s.Max {
			s.Max = r.Elapsed
		}
		sum += r.Elapsed
	}
	s.Mean = sum / time.Duration(len(results))
	return s
}
