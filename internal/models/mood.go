package models

import (
	"time"

	"github.com/google/uuid"
)

// Mood is one of the five fixed self-report labels.
type Mood string

const (
	MoodHebat       Mood = "Hebat"
	MoodBaik        Mood = "Baik"
	MoodOke         Mood = "Oke"
	MoodBuruk       Mood = "Buruk"
	MoodSangatBuruk Mood = "SangatBuruk"
)

// MoodTaxonomy lists every recognized label, in display order.
var MoodTaxonomy = []Mood{MoodHebat, MoodBaik, MoodOke, MoodBuruk, MoodSangatBuruk}

// InTaxonomy reports whether m is one of the five fixed labels.
func (m Mood) InTaxonomy() bool {
	switch m {
	case MoodHebat, MoodBaik, MoodOke, MoodBuruk, MoodSangatBuruk:
		return true
	}
	return false
}

// Positive reports whether m counts toward the positive-mood ratio.
// The set is fixed and case-sensitive.
func (m Mood) Positive() bool {
	return m == MoodHebat || m == MoodBaik
}

// MoodSession is a contiguous interval during which the user reported a
// single mood. At most one session per user has a nil EndTime.
type MoodSession struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Mood            Mood       `json:"mood"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes *int       `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
}

type CreateMoodRequest struct {
	Mood string `json:"mood"`
}

type UpdateMoodRequest struct {
	EndTime *time.Time `json:"endTime"`
}

// MoodStat aggregates a single mood's share of a stats window.
type MoodStat struct {
	TotalMinutes int     `json:"totalMinutes"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}

type MoodStatsResult struct {
	Period       string             `json:"period"`
	TotalMinutes int                `json:"totalMinutes"`
	Stats        map[Mood]*MoodStat `json:"stats"`
	History      []*MoodSession     `json:"history"`
}

type MoodDistributionResult struct {
	TotalEntries int              `json:"totalEntries"`
	Distribution map[Mood]float64 `json:"distribution"`
}

type ProgressResult struct {
	Period                 string  `json:"period"`
	GrowthPercentage       int     `json:"growthPercentage"`
	PositiveMoodPercentage float64 `json:"positiveMoodPercentage"`
	Message                string  `json:"message"`
}
