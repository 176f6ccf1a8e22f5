package program

import (
	"fmt"
	"math"

	"github.com/mesokit/mesokit/internal/catalog"
)

// Volume planning constants.
const (
	priorityVolumeBonus   = 2
	limitedVolumeHeadroom = 2

	beginnerRampYears         = 2.0
	intermediateRampStartYear = 2.0
	intermediateRampYears     = 3.0
	advancedRampStartYear     = 5.0
	advancedRampYears         = 4.0
	advancedRampScale         = 2.0
)

// volumeRange is the weekly set-count band a muscle ramps through over the
// mesocycle, from the first training week to the last.
type volumeRange struct {
	start int
	end   int
}

// volumeTargets computes the per-muscle weekly volume bands for a profile.
func volumeTargets(c *catalog.Catalog, p Profile, mods modifiers) (map[catalog.Muscle]volumeRange, error) {
	priority := make(map[catalog.Muscle]bool, len(p.PriorityMuscles))
	for _, m := range p.PriorityMuscles {
		priority[m] = true
	}

	targets := make(map[catalog.Muscle]volumeRange)
	for _, muscle := range catalog.Muscles() {
		lm, ok := c.Landmarks(muscle)
		if !ok {
			return nil, fmt.Errorf("no landmarks for muscle %s", muscle)
		}

		if mods.limitedMuscles[muscle] {
			// Maintenance only while the limitation is reported.
			targets[muscle] = volumeRange{
				start: lm.MV,
				end:   min(lm.MV+limitedVolumeHeadroom, lm.MAVLow),
			}
			continue
		}

		r := experienceBand(p.Experience, lm)

		ramp := trainingYearsRamp(p.Experience, p.TrainingYears)
		r.start = int(math.Round(float64(r.start) + ramp))
		r.end = int(math.Round(float64(r.end) + ramp))

		if priority[muscle] {
			r.start += priorityVolumeBonus
			r.end += priorityVolumeBonus
		}

		r.start = clampInt(r.start, lm.MEV, lm.MRV)
		r.end = clampInt(r.end, lm.MEV, lm.MRV)
		if r.end < r.start {
			r.end = r.start
		}
		targets[muscle] = r
	}
	return targets, nil
}

// experienceBand maps an experience level onto the adaptive volume landmarks.
func experienceBand(exp Experience, lm catalog.VolumeLandmarks) volumeRange {
	switch exp {
	case ExperienceBeginner:
		return volumeRange{start: lm.MEV, end: lm.MAVLow}
	case ExperienceIntermediate:
		return volumeRange{
			start: (lm.MEV + lm.MAVLow) / 2,
			end:   (lm.MAVLow + lm.MAVHigh) / 2,
		}
	case ExperienceAdvanced:
		return volumeRange{start: lm.MAVLow, end: lm.MAVHigh}
	default:
		return volumeRange{start: lm.MEV, end: lm.MAVLow}
	}
}

// trainingYearsRamp returns extra weekly sets earned through accumulated
// training years within the current experience level.
func trainingYearsRamp(exp Experience, years float64) float64 {
	switch exp {
	case ExperienceBeginner:
		return math.Min(years/beginnerRampYears, 1)
	case ExperienceIntermediate:
		return clampFloat((years-intermediateRampStartYear)/intermediateRampYears, 0, 1)
	case ExperienceAdvanced:
		return advancedRampScale * clampFloat((years-advancedRampStartYear)/advancedRampYears, 0, 1)
	default:
		return 0
	}
}

// weeklySets interpolates a muscle's set count for a given week. The deload
// week drops to maintenance volume; training weeks ramp linearly from the
// start of the band to its end.
func weeklySets(r volumeRange, weekIdx, trainingWeeks int, deload bool, maintenance int) int {
	if deload {
		return maintenance
	}
	if trainingWeeks <= 1 {
		return r.start
	}
	t := float64(weekIdx) / float64(trainingWeeks-1)
	return int(math.Round(float64(r.start) + t*float64(r.end-r.start)))
}

// weekProgress returns how far into the training weeks a week is, in [0, 1].
func weekProgress(weekIdx, trainingWeeks int) float64 {
	if trainingWeeks <= 1 {
		return 0
	}
	return float64(weekIdx) / float64(trainingWeeks-1)
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func clampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
