package services

import "sort"

// Kind identifies a cached resource collection.
type Kind string

const (
	KindLocation       Kind = "location"
	KindTransportation Kind = "transportation"
)

// Reload order when several kinds are invalidated together.
var kindOrder = []Kind{KindLocation, KindTransportation}

// Dependencies declares which kinds each kind references. Deleting a record
// of kind K invalidates every kind that depends on K, directly or transitively.
// Transportations reference locations by code, so a deleted location can
// orphan transportation records.
var Dependencies = map[Kind][]Kind{
	KindTransportation: {KindLocation},
}

// dependentsOf returns the kinds that transitively depend on kind, in reload order.
func dependentsOf(graph map[Kind][]Kind, kind Kind) []Kind {
	reached := map[Kind]bool{}
	frontier := []Kind{kind}
	for len(frontier) > 0 {
		target := frontier[0]
		frontier = frontier[1:]
		for dependent, refs := range graph {
			if reached[dependent] || dependent == kind {
				continue
			}
			for _, r := range refs {
				if r == target {
					reached[dependent] = true
					frontier = append(frontier, dependent)
					break
				}
			}
		}
	}

	out := make([]Kind, 0, len(reached))
	for _, k := range kindOrder {
		if reached[k] {
			out = append(out, k)
			delete(reached, k)
		}
	}

	// Kinds missing from kindOrder reload last, by name.
	rest := make([]Kind, 0, len(reached))
	for k := range reached {
		rest = append(rest, k)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	return append(out, rest...)
}

// invalidationSet is kind itself followed by its dependents.
func invalidationSet(graph map[Kind][]Kind, kind Kind) []Kind {
	return append([]Kind{kind}, dependentsOf(graph, kind)...)
}
