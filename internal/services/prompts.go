package services

import (
	"fmt"
	"strings"

	"nuna-backend/internal/models"
)

// System prompts for the AI endpoints. All responses are in Indonesian to
// match the client audience.
const (
	ChatSystemPrompt = "Anda adalah seorang ahli psikologi. Berikan jawaban yang informatif dan mendukung dengan bahasa yang mudah dipahami. Jawab dengan bahasa Indonesia."

	RecommendationSystemPrompt = "Anda adalah seorang ahli psikologi dengan pengalaman bertahun-tahun. Berikan analisis yang mendalam dan personal tentang pola mood pengguna berdasarkan jurnal mereka. Identifikasi tren, wawasan psikologis, dan berikan rekomendasi praktis untuk menjaga kesehatan mental. Jawab dengan bahasa Indonesia yang empatik, mendukung, dan mudah dipahami."

	PatternSystemPrompt = "Anda adalah seorang ahli psikologi yang berspesialisasi dalam analisis pola perilaku. Berdasarkan jurnal dan riwayat mood pengguna, identifikasi pola berulang, pemicu emosi, dan hubungan antara aktivitas dan suasana hati. Jawab dengan bahasa Indonesia yang jelas dan terstruktur."
)

// BuildJournalAnalysisData formats journal entries and a mood tally into the
// text block consumed by the analysis prompts.
func BuildJournalAnalysisData(journals []*models.Journal) string {
	blocks := make([]string, 0, len(journals))
	for _, j := range journals {
		blocks = append(blocks, fmt.Sprintf("Tanggal: %s\nJudul: %s\nMood: %s\nIsi: %s",
			j.CreatedAt.Format("02/01/2006"), j.Title, j.Mood, j.Content))
	}

	return fmt.Sprintf("\nJURNAL PENGGUNA:\n%s\n\nRINGKASAN MOOD:\n%s\n",
		strings.Join(blocks, "\n\n"), moodSummary(journals))
}

// moodSummary counts mood labels in first-seen order, e.g. "Baik: 3 kali, Buruk: 1 kali".
func moodSummary(journals []*models.Journal) string {
	order := []string{}
	counts := map[string]int{}
	for _, j := range journals {
		if _, seen := counts[j.Mood]; !seen {
			order = append(order, j.Mood)
		}
		counts[j.Mood]++
	}

	parts := make([]string, 0, len(order))
	for _, mood := range order {
		parts = append(parts, fmt.Sprintf("%s: %d kali", mood, counts[mood]))
	}
	return strings.Join(parts, ", ")
}

// BuildMoodSessionSummary formats time-weighted session totals for the
// pattern-analysis prompt.
func BuildMoodSessionSummary(sessions []*models.MoodSession) string {
	order := []models.Mood{}
	minutes := map[models.Mood]int{}
	for _, s := range sessions {
		if s.DurationMinutes == nil {
			continue
		}
		if _, seen := minutes[s.Mood]; !seen {
			order = append(order, s.Mood)
		}
		minutes[s.Mood] += *s.DurationMinutes
	}

	if len(order) == 0 {
		return "Tidak ada data sesi mood."
	}

	parts := make([]string, 0, len(order))
	for _, mood := range order {
		parts = append(parts, fmt.Sprintf("%s: %d menit", mood, minutes[mood]))
	}
	return strings.Join(parts, ", ")
}

// BuildRecommendationPrompt is the user-role prompt for the recommendations endpoint.
func BuildRecommendationPrompt(journals []*models.Journal) string {
	return fmt.Sprintf("Berikut adalah data jurnal saya beberapa waktu terakhir:\n\n%s\n\nTolong analisis pola mood dan keadaan psikologis saya berdasarkan jurnal-jurnal ini. Berikan wawasan tentang pola yang mungkin tidak saya sadari dan rekomendasi untuk meningkatkan kesehatan mental saya.",
		BuildJournalAnalysisData(journals))
}

// BuildPatternPrompt is the user-role prompt for the pattern-analysis endpoint.
func BuildPatternPrompt(journals []*models.Journal, sessions []*models.MoodSession) string {
	return fmt.Sprintf("Berikut adalah data jurnal saya:\n\n%s\nRIWAYAT SESI MOOD (30 hari terakhir):\n%s\n\nTolong identifikasi pola berulang dalam mood dan perilaku saya, termasuk kemungkinan pemicunya.",
		BuildJournalAnalysisData(journals), BuildMoodSessionSummary(sessions))
}
