package conflict

import (
	"math/rand"

	"github.com/floorfield/evacsim/internal/geom"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/floorfield/evacsim/internal/pedestrian"
)

// NoWinner is the sentinel Allowed value meaning every participant in a
// record was denied the move.
const NoWinner = 0

// Record is a same-target conflict: two or more MOVING pedestrians who
// independently drew the same target cell this timestep.
type Record struct {
	Target        gridkit.Coordinate
	PedestrianIDs []int
	Allowed       int
}

// DetectSameTarget scans every MOVING pedestrian's target, grouping
// collisions into Records. A fresh auxiliary map stands in for the
// source's grid-of-ids-or-negated-record-index: the first pedestrian to
// claim a cell writes its id; a second claimant lifts the cell into a new
// record; further claimants extend the existing record.
// Complexity: O(n) in the number of MOVING pedestrians.
func DetectSameTarget(pedestrians []*pedestrian.Pedestrian) []*Record {
	claim := make(map[gridkit.Coordinate]int)
	var records []*Record

	for _, p := range pedestrians {
		if p.State != pedestrian.Moving {
			continue
		}
		v, exists := claim[p.Target]
		switch {
		case !exists:
			claim[p.Target] = p.ID
		case v > 0:
			rec := &Record{Target: p.Target, PedestrianIDs: []int{v, p.ID}}
			records = append(records, rec)
			claim[p.Target] = -len(records)
		default:
			idx := -v - 1
			records[idx].PedestrianIDs = append(records[idx].PedestrianIDs, p.ID)
		}
	}
	return records
}

// ResolveSameTarget decides, for each record, whether to deny the move to
// every participant (probability mu) or let one uniformly-chosen
// participant through. Records are mutated in place; the PRNG advances
// once per record for the denial test, plus once more for the winner
// draw when the move is not denied.
func ResolveSameTarget(records []*Record, mu float64, rng *rand.Rand) {
	for _, rec := range records {
		if geom.ProbabilityTest(rng, mu) {
			rec.Allowed = NoWinner
			continue
		}
		winner := geom.RandIntRange(rng, 0, len(rec.PedestrianIDs)-1)
		rec.Allowed = rec.PedestrianIDs[winner]
	}
}

// Apply transitions every denied participant of every record to Stopped.
func Apply(records []*Record, byID map[int]*pedestrian.Pedestrian) {
	for _, rec := range records {
		for _, id := range rec.PedestrianIDs {
			if id != rec.Allowed {
				byID[id].State = pedestrian.Stopped
			}
		}
	}
}
