package analytics

import (
	"math"
	"strings"

	"github.com/ninaorlova/lingua/internal/domain"
)

// SkillRadar is the six-axis skill picture with a balance score derived
// from the spread between axes.
type SkillRadar struct {
	Scores       map[domain.SkillType]float64
	BalanceScore float64 // max(0, 100 - stddev)
	Strongest    domain.SkillType
	Weakest      domain.SkillType
	Spread       float64 // strongest minus weakest
	// Proficiency is the mean of the six axes, used for CEFR placement.
	Proficiency float64
}

// BuildSkillRadar fills every skill axis from the latest score record.
// Axes the record does not cover fall back to the mean score of attempts
// whose exercise type contains the skill name; axes with neither source
// stay at zero.
func BuildSkillRadar(latest *domain.SkillScore, attempts []domain.ExerciseAttempt) SkillRadar {
	radar := SkillRadar{Scores: make(map[domain.SkillType]float64, len(domain.AllSkills))}

	for _, skill := range domain.AllSkills {
		if latest != nil {
			if v, ok := latest.Scores[skill]; ok && v > 0 {
				radar.Scores[skill] = float64(v)
				continue
			}
		}
		radar.Scores[skill] = attemptFallback(skill, attempts)
	}

	values := make([]float64, 0, len(domain.AllSkills))
	var sum float64
	for i, skill := range domain.AllSkills {
		v := radar.Scores[skill]
		values = append(values, v)
		sum += v
		if i == 0 || v > radar.Scores[radar.Strongest] {
			radar.Strongest = skill
		}
		if i == 0 || v < radar.Scores[radar.Weakest] {
			radar.Weakest = skill
		}
	}

	radar.Proficiency = sum / float64(len(values))
	radar.Spread = radar.Scores[radar.Strongest] - radar.Scores[radar.Weakest]
	radar.BalanceScore = math.Max(0, 100-stdDev(values))
	return radar
}

// attemptFallback averages scores of attempts whose exercise type mentions
// the skill, case-insensitively.
func attemptFallback(skill domain.SkillType, attempts []domain.ExerciseAttempt) float64 {
	var (
		sum   float64
		count int
	)
	name := strings.ToLower(string(skill))
	for _, a := range attempts {
		if strings.Contains(strings.ToLower(string(a.ExerciseType)), name) {
			sum += a.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// AlignmentStatus marks a skill's relation to the user's CEFR band.
type AlignmentStatus string

const (
	AlignmentAligned    AlignmentStatus = "aligned"
	AlignmentBelowLevel AlignmentStatus = "below_level"
	AlignmentAboveLevel AlignmentStatus = "above_level"
)

// outlierMargin is how far outside the band a skill must sit before it
// counts as an outlier.
const outlierMargin = 10

// SkillAlignment is one skill's position relative to the CEFR band.
type SkillAlignment struct {
	Skill  domain.SkillType
	Score  float64
	Status AlignmentStatus
}

// CEFRReport places the proficiency score on the band table and flags
// skills that sit well outside the band.
type CEFRReport struct {
	Level           domain.CEFRLevel
	Range           domain.CEFRRange
	ProgressInLevel float64
	Proficiency     float64
	Alignments      []SkillAlignment
	Outliers        []SkillAlignment
}

// PlaceCEFR computes the CEFR placement and per-skill alignment for a radar.
func PlaceCEFR(ranges []domain.CEFRRange, radar SkillRadar) CEFRReport {
	band := domain.LevelForScore(ranges, radar.Proficiency)
	report := CEFRReport{
		Level:           band.Level,
		Range:           band,
		ProgressInLevel: domain.ProgressInLevel(band, radar.Proficiency),
		Proficiency:     radar.Proficiency,
	}

	for _, skill := range domain.AllSkills {
		score := radar.Scores[skill]
		alignment := SkillAlignment{Skill: skill, Score: score, Status: AlignmentAligned}
		switch {
		case score < band.Min-outlierMargin:
			alignment.Status = AlignmentBelowLevel
		case score > band.Max+outlierMargin:
			alignment.Status = AlignmentAboveLevel
		}
		report.Alignments = append(report.Alignments, alignment)
		if alignment.Status != AlignmentAligned {
			report.Outliers = append(report.Outliers, alignment)
		}
	}
	return report
}
