package bevydoc

import (
	"sort"
	"strings"
)

// MatchPriority represents result ranking priority (higher = more relevant).
type MatchPriority int

// Priority tiers for candidate ranking. Prelude items win over core-module
// items, which win over everything else.
const (
	PriorityOther   MatchPriority = 10
	PriorityCore    MatchPriority = 50
	PriorityPrelude MatchPriority = 100
)

// coreModules lists the top-level bevy modules whose items are preferred
// when a search returns multiple matches.
var coreModules = map[string]struct{}{
	"app":       {},
	"asset":     {},
	"audio":     {},
	"ecs":       {},
	"hierarchy": {},
	"input":     {},
	"math":      {},
	"render":    {},
	"sprite":    {},
	"state":     {},
	"text":      {},
	"time":      {},
	"transform": {},
	"ui":        {},
	"window":    {},
}

// Priority returns the ranking tier for a candidate based on its module path.
func (c Candidate) Priority() MatchPriority {
	segments := strings.Split(c.Path, "::")
	if len(segments) < 2 || segments[0] != "bevy" {
		return PriorityOther
	}
	if segments[1] == "prelude" {
		return PriorityPrelude
	}
	if _, ok := coreModules[segments[1]]; ok {
		return PriorityCore
	}
	return PriorityOther
}

// RankCandidates orders candidates by relevance to the keyword.
// Prelude and core-module items rank first; within a tier an exact name
// match wins, then shorter paths, then document order from the results page.
func RankCandidates(keyword string, candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if pa, pb := a.Priority(), b.Priority(); pa != pb {
			return pa > pb
		}

		ea, eb := a.Name() == keyword, b.Name() == keyword
		if ea != eb {
			return ea
		}

		da, db := pathDepth(a.Path), pathDepth(b.Path)
		if da != db {
			return da < db
		}

		return a.Position < b.Position
	})

	return ranked
}

func pathDepth(path string) int {
	return strings.Count(path, "::")
}
