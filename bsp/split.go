package bsp

import (
	"math"

	"github.com/ashenforge/dmap/geo"
)

// selectSplitPlane implements §4.3: a forced block-size cut takes priority
// over every heuristic, then the candidate pool is gated to portal faces
// when any are present, then each remaining candidate plane is scored
// once (faces sharing a plane index are only scored through the first
// face encountered) and the highest-scoring plane wins, ties breaking
// toward the first-encountered candidate.
//
// planeUseCount tracks, per plane index, how many nodes built so far in
// the current entity's tree (on any branch, not only ancestors) already
// split on that plane; it feeds the
// alternative scoring formula's planeCounter term and is updated by the
// caller after a plane is chosen, not by selectSplitPlane itself.
func selectSplitPlane(faces []*Face, bounds geo.Bounds, planes PlaneRegistry, opts Options, planeUseCount map[int]int) (int, bool) {
	if idx, ok := forcedBlockCut(bounds, opts.BlockSize, planes); ok {
		return idx, true
	}

	hasPortals := false
	for _, f := range faces {
		if f.Portal {
			hasPortals = true
			break
		}
	}

	checked := make(map[int]bool)
	bestScore := math.Inf(-1)
	bestPlane := -1
	found := false

	for _, cand := range faces {
		if hasPortals && !cand.Portal {
			continue
		}
		if checked[cand.PlaneIndex] {
			continue
		}
		checked[cand.PlaneIndex] = true

		score := scoreCandidate(cand, faces, planes, opts, planeUseCount)
		if score > bestScore {
			bestScore = score
			bestPlane = cand.PlaneIndex
			found = true
		}
	}

	return bestPlane, found
}

// scoreCandidate computes either the default id-Software-style score or
// the alternative formula for splitting on cand's plane, per §4.3 step 3.
func scoreCandidate(cand *Face, faces []*Face, planes PlaneRegistry, opts Options, planeUseCount map[int]int) float64 {
	plane := planes.Get(cand.PlaneIndex)

	var front, back, splits, facing int
	for _, f2 := range faces {
		if f2.PlaneIndex == cand.PlaneIndex {
			facing++
			continue
		}
		switch f2.Winding.ClassifySide(plane, geo.ClipEpsilon) {
		case geo.Front:
			front++
		case geo.Back:
			back++
		case geo.Cross:
			splits++
		case geo.On:
			facing++
		}
	}

	if !opts.AltSplit {
		score := 5*float64(facing) - 5*float64(splits)
		if plane.Type().IsAxial() {
			score += 5
		}
		return score
	}

	numFaces := float64(len(faces))
	planeCounter := float64(planeUseCount[cand.PlaneIndex])
	sizeBias := cand.Winding.Area()

	diff := front - back
	if diff < 0 {
		diff = -diff
	}

	return 10*numFaces - float64(diff) - planeCounter - float64(facing) - 5*float64(splits) + 10*sizeBias
}

// forcedBlockCut implements §4.3 step 1: for the first axis (X, then Y,
// then Z) whose configured block size is positive and whose full extent
// the node's bounds exceed, return the index of the plane cutting at the
// next multiple of that block size strictly inside the bounds. Using the
// full extent (not the half-extent) means an oversized axis keeps getting
// cut on every recursion until each leaf spans at most one block, instead
// of stopping one cut short. Returns (0, false) when no axis qualifies.
func forcedBlockCut(bounds geo.Bounds, blockSize geo.Vec3, planes PlaneRegistry) (int, bool) {
	for _, axis := range [3]geo.Axis{geo.AxisX, geo.AxisY, geo.AxisZ} {
		bs := blockSize.Component(axis)
		if bs <= 0 {
			continue
		}

		lo := bounds.Min.Component(axis)
		hi := bounds.Max.Component(axis)
		if hi-lo <= 0 {
			continue
		}
		if hi-lo <= bs {
			continue
		}

		mult := math.Floor(lo/bs) + 1
		dist := mult * bs
		if dist <= lo || dist >= hi {
			continue
		}

		plane := geo.AxisPlane(axis, dist)
		return planes.FindOrInsert(plane), true
	}
	return 0, false
}
