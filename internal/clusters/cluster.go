package clusters

import (
	"fmt"
	"slices"
)

// Cluster represents a latent user archetype. Answers shift probability
// mass between clusters; core skills seed scenario targeting.
type Cluster struct {
	ID          string
	Label       string
	Description string
	CoreSkills  []string
}

// index holds the cluster set with precomputed lookups.
type index struct {
	clusters []Cluster
	byID     map[string]*Cluster
	ids      []string
}

// idx is the package-level index, built by init() in seed.go.
var idx *index

// buildIndex constructs the index from a slice of clusters, preserving
// the declared order.
func buildIndex(cs []Cluster) *index {
	ix := &index{
		clusters: cs,
		byID:     make(map[string]*Cluster, len(cs)),
		ids:      make([]string, 0, len(cs)),
	}
	for i := range ix.clusters {
		ix.byID[ix.clusters[i].ID] = &ix.clusters[i]
		ix.ids = append(ix.ids, ix.clusters[i].ID)
	}
	return ix
}

// Get returns a cluster by ID, or an error if not found.
func Get(id string) (Cluster, error) {
	c, ok := idx.byID[id]
	if !ok {
		return Cluster{}, fmt.Errorf("cluster not found: %q", id)
	}
	return *c, nil
}

// All returns all clusters in declaration order.
func All() []Cluster {
	return slices.Clone(idx.clusters)
}

// IDs returns all cluster IDs in declaration order.
func IDs() []string {
	return slices.Clone(idx.ids)
}

// Count returns the number of clusters.
func Count() int {
	return len(idx.clusters)
}

// CoreSkills returns the core skill IDs for a cluster, or nil if the
// cluster does not exist.
func CoreSkills(id string) []string {
	c, ok := idx.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.CoreSkills)
}
