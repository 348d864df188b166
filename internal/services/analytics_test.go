package services

import (
	"errors"
	"testing"
	"time"

	"nuna-backend/internal/models"
)

func session(mood models.Mood, minutes int) *models.MoodSession {
	return &models.MoodSession{Mood: mood, DurationMinutes: &minutes}
}

func openSession(mood models.Mood) *models.MoodSession {
	return &models.MoodSession{Mood: mood}
}

func TestComputeMoodStats_Empty(t *testing.T) {
	result := ComputeMoodStats(nil, 7)

	if result.Period != "7 days" {
		t.Errorf("Expected period '7 days', got %q", result.Period)
	}
	if result.TotalMinutes != 0 {
		t.Errorf("Expected 0 total minutes, got %d", result.TotalMinutes)
	}
	if len(result.Stats) != 0 {
		t.Errorf("Expected empty stats map, got %d entries", len(result.Stats))
	}
}

func TestComputeMoodStats_Aggregation(t *testing.T) {
	sessions := []*models.MoodSession{
		session(models.MoodBaik, 30),
		session(models.MoodBaik, 30),
		session(models.MoodBuruk, 20),
		openSession(models.MoodOke), // nil duration, must be skipped
	}

	result := ComputeMoodStats(sessions, 7)

	if result.TotalMinutes != 80 {
		t.Fatalf("Expected 80 total minutes, got %d", result.TotalMinutes)
	}

	baik := result.Stats[models.MoodBaik]
	if baik == nil || baik.TotalMinutes != 60 || baik.Count != 2 {
		t.Fatalf("Unexpected Baik aggregate: %+v", baik)
	}
	if baik.Percentage != 75 {
		t.Errorf("Expected Baik percentage 75, got %v", baik.Percentage)
	}

	buruk := result.Stats[models.MoodBuruk]
	if buruk == nil || buruk.Percentage != 25 {
		t.Errorf("Expected Buruk percentage 25, got %+v", buruk)
	}

	if _, ok := result.Stats[models.MoodOke]; ok {
		t.Error("Open session must not contribute a stats entry")
	}
}

func TestComputeMoodStats_RawPercentages(t *testing.T) {
	sessions := []*models.MoodSession{
		session(models.MoodHebat, 1),
		session(models.MoodBaik, 1),
		session(models.MoodOke, 1),
	}

	result := ComputeMoodStats(sessions, 7)

	// One third of the total, unrounded.
	want := float64(1) / float64(3) * 100
	if got := result.Stats[models.MoodHebat].Percentage; got != want {
		t.Errorf("Expected raw percentage %v, got %v", want, got)
	}
}

func TestComputeMoodDistribution_Empty(t *testing.T) {
	result := ComputeMoodDistribution(nil)

	if result.TotalEntries != 0 {
		t.Errorf("Expected 0 entries, got %d", result.TotalEntries)
	}
	if len(result.Distribution) != len(models.MoodTaxonomy) {
		t.Fatalf("Expected all %d labels present, got %d", len(models.MoodTaxonomy), len(result.Distribution))
	}
	for _, m := range models.MoodTaxonomy {
		if result.Distribution[m] != 0 {
			t.Errorf("Expected %s to be 0, got %v", m, result.Distribution[m])
		}
	}
}

func TestComputeMoodDistribution_SumsTo100(t *testing.T) {
	sessions := []*models.MoodSession{
		session(models.MoodHebat, 10),
		session(models.MoodHebat, 10),
		session(models.MoodBaik, 10),
		session(models.MoodBuruk, 10),
	}

	result := ComputeMoodDistribution(sessions)

	if result.TotalEntries != 4 {
		t.Fatalf("Expected 4 entries, got %d", result.TotalEntries)
	}
	if result.Distribution[models.MoodHebat] != 50 {
		t.Errorf("Expected Hebat 50, got %v", result.Distribution[models.MoodHebat])
	}

	sum := 0.0
	for _, pct := range result.Distribution {
		sum += pct
	}
	if sum != 100 {
		t.Errorf("Expected in-taxonomy shares to sum to 100, got %v", sum)
	}
}

func TestComputeMoodDistribution_StrayLabels(t *testing.T) {
	sessions := []*models.MoodSession{
		session(models.MoodHebat, 10),
		session(models.MoodBaik, 10),
		session("Senang", 10), // outside the taxonomy
		session("Senang", 10),
	}

	result := ComputeMoodDistribution(sessions)

	// Stray labels inflate the denominator but get no bucket.
	if result.TotalEntries != 4 {
		t.Fatalf("Expected 4 entries, got %d", result.TotalEntries)
	}
	if _, ok := result.Distribution["Senang"]; ok {
		t.Error("Stray label must not appear in the distribution")
	}
	if result.Distribution[models.MoodHebat] != 25 {
		t.Errorf("Expected Hebat 25, got %v", result.Distribution[models.MoodHebat])
	}

	sum := 0.0
	for _, pct := range result.Distribution {
		sum += pct
	}
	if sum != 50 {
		t.Errorf("Expected shares to sum to 50 with stray labels, got %v", sum)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"sunday maps to itself", time.Date(2024, 1, 7, 15, 30, 0, 0, time.UTC), "2024-01-07"},
		{"wednesday maps back to sunday", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "2024-01-07"},
		{"saturday maps back to sunday", time.Date(2024, 1, 13, 23, 59, 0, 0, time.UTC), "2024-01-07"},
		{"month boundary", time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), "2024-01-28"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekStart(tc.in); got != tc.want {
				t.Errorf("WeekStart(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestComputeProgress_NoData(t *testing.T) {
	_, err := ComputeProgress(nil, nil, 30)
	if err == nil {
		t.Fatal("Expected error for empty input")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %T", err)
	}
}

func TestComputeProgress_SingleWeekFallback(t *testing.T) {
	// All journals land in one week, so growth falls back to the
	// session-derived positive share minus 50.
	created := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	journals := []*models.Journal{
		{Mood: "Baik", CreatedAt: created},
		{Mood: "Buruk", CreatedAt: created.Add(24 * time.Hour)},
	}
	sessions := []*models.MoodSession{
		session(models.MoodHebat, 70),
		session(models.MoodBuruk, 30),
	}

	result, err := ComputeProgress(journals, sessions, 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.PositiveMoodPercentage != 70 {
		t.Errorf("Expected 70%% positive, got %v", result.PositiveMoodPercentage)
	}
	if result.GrowthPercentage != 20 {
		t.Errorf("Expected growth 20, got %d", result.GrowthPercentage)
	}
	if result.Period != "30 days" {
		t.Errorf("Expected period '30 days', got %q", result.Period)
	}
}

func TestComputeProgress_SingleWeekBalanced(t *testing.T) {
	// Positive share at exactly 50 yields zero growth, not the fallback.
	journals := []*models.Journal{
		{Mood: "Oke", CreatedAt: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)},
	}
	sessions := []*models.MoodSession{
		session(models.MoodBaik, 50),
		session(models.MoodBuruk, 50),
	}

	result, err := ComputeProgress(journals, sessions, 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.GrowthPercentage != 0 {
		t.Errorf("Expected growth 0, got %d", result.GrowthPercentage)
	}
}

func TestComputeProgress_WeekOverWeek(t *testing.T) {
	// First week: 1 of 2 positive (50%). Last week: 2 of 2 positive (100%).
	firstWeek := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	lastWeek := time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)
	journals := []*models.Journal{
		{Mood: "Baik", CreatedAt: firstWeek},
		{Mood: "Buruk", CreatedAt: firstWeek.Add(time.Hour)},
		{Mood: "Hebat", CreatedAt: lastWeek},
		{Mood: "Baik", CreatedAt: lastWeek.Add(time.Hour)},
	}

	result, err := ComputeProgress(journals, nil, 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.GrowthPercentage != 50 {
		t.Errorf("Expected growth 50, got %d", result.GrowthPercentage)
	}
	if result.PositiveMoodPercentage != 0 {
		t.Errorf("Expected 0%% positive without sessions, got %v", result.PositiveMoodPercentage)
	}
}

func TestComputeProgress_Decline(t *testing.T) {
	firstWeek := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	lastWeek := time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)
	journals := []*models.Journal{
		{Mood: "Hebat", CreatedAt: firstWeek},
		{Mood: "Buruk", CreatedAt: lastWeek},
	}

	result, err := ComputeProgress(journals, nil, 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.GrowthPercentage != -100 {
		t.Errorf("Expected growth -100, got %d", result.GrowthPercentage)
	}
}

func TestProgressMessage(t *testing.T) {
	up := progressMessage(15, 30)
	if up != "Dalam 30 hari terakhir, mood positif Anda meningkat sebesar 15%. Pertahankan kebiasaan baik Anda!" {
		t.Errorf("Unexpected improvement message: %q", up)
	}

	down := progressMessage(-10, 30)
	if down != "Dalam 30 hari terakhir, mood positif Anda menurun sebesar 10%. Cobalah luangkan lebih banyak waktu untuk diri sendiri." {
		t.Errorf("Unexpected decline message: %q", down)
	}

	stable := progressMessage(0, 7)
	if stable != "Mood Anda cenderung stabil dalam 7 hari terakhir. Terus jaga keseimbangan Anda." {
		t.Errorf("Unexpected stable message: %q", stable)
	}
}

func TestMoodPositive(t *testing.T) {
	if !models.MoodHebat.Positive() || !models.MoodBaik.Positive() {
		t.Error("Hebat and Baik must be positive")
	}
	if models.MoodOke.Positive() || models.MoodBuruk.Positive() || models.MoodSangatBuruk.Positive() {
		t.Error("Oke, Buruk, and SangatBuruk must not be positive")
	}
	if models.Mood("hebat").Positive() {
		t.Error("Positive must be case-sensitive")
	}
}
