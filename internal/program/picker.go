package program

import (
	"github.com/mesokit/mesokit/internal/catalog"
)

// Exercise selection constants.
const (
	// maxSetsPerExercise is the day-share above which a muscle's sets are
	// spread over two exercises.
	maxSetsPerExercise = 4
)

// pick is one selected exercise with its assigned set count.
type pick struct {
	exerciseID string
	sets       int
}

// selectExercises chooses the exercises covering one muscle on one day and
// splits the day's sets across them. dayVariant rotates selection between
// repeated days of the same kind, and mesoHalf rotates it between the first
// and second half of the mesocycle. used tracks exercises already claimed
// earlier in the same day so they are not repeated. A muscle whose filtered
// pool is empty gets no exercises; the day is simply under-allocated.
func (g *generator) selectExercises(
	muscle catalog.Muscle,
	daySets int,
	dayVariant int,
	mesoHalf int,
	used map[string]bool,
) []pick {
	pool := g.candidatePool(muscle)
	if len(pool) == 0 {
		return nil
	}

	count := 1
	if daySets > maxSetsPerExercise {
		count = 2
	}
	if count > len(pool) {
		count = len(pool)
	}

	picks := make([]pick, 0, count)
	for slot := range count {
		offset := dayVariant*2 + slot
		if slot > 0 {
			offset += mesoHalf
		}
		id := pickFromPool(pool, offset, used)
		used[id] = true
		picks = append(picks, pick{exerciseID: id, sets: splitSets(daySets, count, slot)})
	}
	return picks
}

// candidatePool builds the ordered candidate list for a muscle: the catalog
// pool filtered by available equipment, guided equipment moved to the front
// when preferred, and joint-stressing exercises moved to the back.
func (g *generator) candidatePool(muscle catalog.Muscle) []string {
	allowed := g.profile.allowedEquipment()

	var pool []string
	for _, id := range g.catalog.Pool(muscle) {
		ex, ok := g.catalog.Exercise(id)
		if !ok {
			continue
		}
		if allowed[ex.Equipment] {
			pool = append(pool, id)
		}
	}

	if g.mods.machinePreference {
		pool = stablePartition(pool, func(id string) bool {
			ex, _ := g.catalog.Exercise(id)
			return ex.Equipment.IsMachineFamily()
		})
	}

	// Risky exercises always end up last regardless of equipment ordering.
	pool = stablePartition(pool, func(id string) bool {
		return !g.mods.deprioritized[id]
	})

	return pool
}

// pickFromPool returns the exercise at offset, stepping past entries already
// used in the day. If every candidate is used the offset entry is reused.
func pickFromPool(pool []string, offset int, used map[string]bool) string {
	n := len(pool)
	for step := range n {
		id := pool[(offset+step)%n]
		if !used[id] {
			return id
		}
	}
	return pool[offset%n]
}

// splitSets divides a day's sets across the selected exercises, earlier slots
// taking the remainder. Every slot gets at least one set.
func splitSets(total, count, slot int) int {
	base := total / count
	if slot < total%count {
		base++
	}
	if base < 1 {
		base = 1
	}
	return base
}

// stablePartition reorders ids so that entries matching keep come first,
// preserving relative order within both groups.
func stablePartition(ids []string, keep func(string) bool) []string {
	out := make([]string, 0, len(ids))
	var rest []string
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		} else {
			rest = append(rest, id)
		}
	}
	return append(out, rest...)
}
