package spanner

import (
	"math/rand"
	"sort"
)

// membership is the tagged clustering state of one vertex:
// either Active in a named cluster, or Retired for good.
// A tagged struct (rather than a sentinel cluster id) keeps the
// final-phase bookkeeping explicit and checkable.
type membership struct {
	cluster int
	retired bool
}

// clusterState tracks cluster assignments during one construction run.
// It is created at the start of Build and discarded at its end; it never
// escapes the invocation.
//
// Invariants, preserved by every mutation:
//   - every active vertex's cluster id names a cluster present in members;
//   - members[c] holds exactly the active vertices assigned to c;
//   - retired vertices belong to no cluster and never become active again.
type clusterState struct {
	assign  []membership  // vertex id → tagged assignment (arena+index)
	members map[int][]int // cluster id → active member vertices
}

// newClusterState seeds the identity partition: every vertex is the
// center of its own singleton cluster.
// Complexity: O(n).
func newClusterState(n int) *clusterState {
	cs := &clusterState{
		assign:  make([]membership, n),
		members: make(map[int][]int, n),
	}
	for v := 0; v < n; v++ {
		cs.assign[v] = membership{cluster: v}
		cs.members[v] = []int{v}
	}

	return cs
}

// ClusterOf returns the cluster id of v and whether v is active.
func (cs *clusterState) ClusterOf(v int) (int, bool) {
	m := cs.assign[v]
	if m.retired {
		return 0, false
	}

	return m.cluster, true
}

// MembersOf returns the active member list of cluster c (nil if the
// cluster does not exist). The slice is internal; callers must not
// mutate it.
func (cs *clusterState) MembersOf(c int) []int { return cs.members[c] }

// IsActive reports whether v still participates in clustering.
func (cs *clusterState) IsActive(v int) bool { return !cs.assign[v].retired }

// Retire removes v from active tracking permanently.
// Its cluster is dropped once its member list empties.
func (cs *clusterState) Retire(v int) {
	m := cs.assign[v]
	if m.retired {
		return
	}
	cs.removeMember(m.cluster, v)
	cs.assign[v] = membership{retired: true}
}

// Reassign moves the active vertex v into cluster c.
// The previous cluster is dropped once its member list empties.
func (cs *clusterState) Reassign(v, c int) {
	m := cs.assign[v]
	if m.retired || m.cluster == c {
		return
	}
	cs.removeMember(m.cluster, v)
	cs.assign[v] = membership{cluster: c}
	cs.members[c] = append(cs.members[c], v)
}

// removeMember deletes v from cluster c's member list, dropping the
// cluster entirely when it empties.
func (cs *clusterState) removeMember(c, v int) {
	list := cs.members[c]
	for i, w := range list {
		if w == v {
			list[i] = list[len(list)-1]
			list = list[:len(list)-1]
			break
		}
	}
	if len(list) == 0 {
		delete(cs.members, c)
		return
	}
	cs.members[c] = list
}

// ClusterIDs returns the ids of all existing clusters in ascending order.
// The stable order is what makes survivor sampling reproducible.
func (cs *clusterState) ClusterIDs() []int {
	ids := make([]int, 0, len(cs.members))
	for c := range cs.members {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	return ids
}

// SampleSurvivors draws one independent Bernoulli(prob) trial per existing
// cluster, in ascending cluster-id order, and returns the set of cluster
// ids whose trial succeeded. The draw order is fixed so a fixed seed
// yields a fixed survivor set.
// Complexity: O(C log C) for C existing clusters.
func (cs *clusterState) SampleSurvivors(prob float64, rng *rand.Rand) map[int]bool {
	survived := make(map[int]bool)
	for _, c := range cs.ClusterIDs() {
		if rng.Float64() < prob {
			survived[c] = true
		}
	}

	return survived
}

// snapshot copies the current per-vertex assignment. Phase logic resolves
// neighboring clusters against the snapshot from the end of the previous
// phase, so in-phase mutation cannot leak into neighbor computation.
func (cs *clusterState) snapshot() []membership {
	out := make([]membership, len(cs.assign))
	copy(out, cs.assign)

	return out
}
