package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"nuna-backend/internal/models"
)

// ComputeMoodStats aggregates closed sessions into per-mood totals over the
// trailing window. Percentages are left unrounded here; only the distribution
// endpoint rounds, matching long-standing client expectations.
func ComputeMoodStats(sessions []*models.MoodSession, days int) *models.MoodStatsResult {
	stats := make(map[models.Mood]*models.MoodStat)
	totalMinutes := 0

	for _, s := range sessions {
		if s.DurationMinutes == nil {
			continue
		}
		entry, ok := stats[s.Mood]
		if !ok {
			entry = &models.MoodStat{}
			stats[s.Mood] = entry
		}
		entry.TotalMinutes += *s.DurationMinutes
		entry.Count++
		totalMinutes += *s.DurationMinutes
	}

	if totalMinutes > 0 {
		for _, entry := range stats {
			entry.Percentage = float64(entry.TotalMinutes) / float64(totalMinutes) * 100
		}
	}

	return &models.MoodStatsResult{
		Period:       fmt.Sprintf("%d days", days),
		TotalMinutes: totalMinutes,
		Stats:        stats,
		History:      sessions,
	}
}

// ComputeMoodDistribution reports each taxonomy label's share of the matched
// records, rounded to two decimals. Every label is present even at zero.
//
// TotalEntries counts every matched record, including moods outside the
// taxonomy, while only in-taxonomy records contribute to percentages, so the
// shares need not sum to 100 when stray labels exist. This mirrors the
// behavior clients already depend on.
func ComputeMoodDistribution(sessions []*models.MoodSession) *models.MoodDistributionResult {
	counts := make(map[models.Mood]int, len(models.MoodTaxonomy))
	for _, m := range models.MoodTaxonomy {
		counts[m] = 0
	}

	for _, s := range sessions {
		if s.Mood.InTaxonomy() {
			counts[s.Mood]++
		}
	}

	totalEntries := len(sessions)
	distribution := make(map[models.Mood]float64, len(models.MoodTaxonomy))
	for _, m := range models.MoodTaxonomy {
		if totalEntries == 0 {
			distribution[m] = 0
			continue
		}
		distribution[m] = round2(float64(counts[m]) / float64(totalEntries) * 100)
	}

	return &models.MoodDistributionResult{
		TotalEntries: totalEntries,
		Distribution: distribution,
	}
}

// WeekStart returns the date of the Sunday on or before t, as YYYY-MM-DD.
// Lexicographic order on the keys is chronological.
func WeekStart(t time.Time) string {
	t = t.UTC()
	return t.AddDate(0, 0, -int(t.Weekday())).Format("2006-01-02")
}

type weekTally struct {
	total    int
	positive int
}

// ComputeProgress derives the week-over-week positive-mood trend from journal
// entries, and the time-weighted positive share from mood sessions, over the
// same trailing window. Journals are bucketed by calendar week (Sunday start);
// sessions are weighted by recorded minutes.
func ComputeProgress(journals []*models.Journal, sessions []*models.MoodSession, days int) (*models.ProgressResult, error) {
	if len(journals) == 0 && len(sessions) == 0 {
		return nil, &NotFoundError{Message: "No mood or journal data found for analysis"}
	}

	weeks := make(map[string]*weekTally)
	for _, j := range journals {
		key := WeekStart(j.CreatedAt)
		w, ok := weeks[key]
		if !ok {
			w = &weekTally{}
			weeks[key] = w
		}
		w.total++
		if models.Mood(j.Mood).Positive() {
			w.positive++
		}
	}

	totalMinutes := 0
	positiveMinutes := 0
	for _, s := range sessions {
		if s.DurationMinutes == nil {
			continue
		}
		totalMinutes += *s.DurationMinutes
		if s.Mood.Positive() {
			positiveMinutes += *s.DurationMinutes
		}
	}

	positivePct := 0.0
	if totalMinutes > 0 {
		positivePct = float64(positiveMinutes) / float64(totalMinutes) * 100
	}

	keys := make([]string, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	growth := 0.0
	switch {
	case len(keys) >= 2:
		first := weeks[keys[0]]
		last := weeks[keys[len(keys)-1]]
		growth = float64(last.positive)/float64(last.total)*100 - float64(first.positive)/float64(first.total)*100
	case positivePct > 50:
		growth = positivePct - 50
	}

	growthPct := int(math.Round(growth))

	return &models.ProgressResult{
		Period:                 fmt.Sprintf("%d days", days),
		GrowthPercentage:       growthPct,
		PositiveMoodPercentage: positivePct,
		Message:                progressMessage(growthPct, days),
	}, nil
}

func progressMessage(growth, days int) string {
	switch {
	case growth > 0:
		return fmt.Sprintf("Dalam %d hari terakhir, mood positif Anda meningkat sebesar %d%%. Pertahankan kebiasaan baik Anda!", days, growth)
	case growth < 0:
		return fmt.Sprintf("Dalam %d hari terakhir, mood positif Anda menurun sebesar %d%%. Cobalah luangkan lebih banyak waktu untuk diri sendiri.", days, -growth)
	default:
		return fmt.Sprintf("Mood Anda cenderung stabil dalam %d hari terakhir. Terus jaga keseimbangan Anda.", days)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
