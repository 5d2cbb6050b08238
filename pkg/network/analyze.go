package network

import (
	"fmt"
	"sort"
	"strings"
)

// UserStat names one user together with the metric a query ranked it by.
type UserStat struct {
	UserID string
	Name   string
	Count  int
}

// Suggestion is one follow recommendation with its relevance score (how
// many of the target's followings also follow the suggested user).
type Suggestion struct {
	UserID string
	Name   string
	Score  int
}

// MostInfluential returns the user with the most followers (highest
// in-degree), or false for an empty graph. Ties break toward the smaller id
// so results are deterministic.
func (g *Graph) MostInfluential() (UserStat, bool) {
	return g.maxDegree(g.InDegree)
}

// MostActive returns the user following the most people (highest
// out-degree), or false for an empty graph.
func (g *Graph) MostActive() (UserStat, bool) {
	return g.maxDegree(g.OutDegree)
}

func (g *Graph) maxDegree(degree func(string) int) (UserStat, bool) {
	if len(g.order) == 0 {
		return UserStat{}, false
	}
	best := ""
	for _, id := range g.order {
		if best == "" || degree(id) > degree(best) {
			best = id
		}
	}
	return UserStat{UserID: best, Name: g.Name(best), Count: degree(best)}, true
}

// TopInfluencers returns up to n users sorted by follower count descending.
func (g *Graph) TopInfluencers(n int) []UserStat {
	return g.topBy(n, g.InDegree)
}

// TopActive returns up to n users sorted by following count descending.
func (g *Graph) TopActive(n int) []UserStat {
	return g.topBy(n, g.OutDegree)
}

func (g *Graph) topBy(n int, degree func(string) int) []UserStat {
	stats := make([]UserStat, 0, len(g.order))
	for _, id := range g.order {
		stats = append(stats, UserStat{UserID: id, Name: g.Name(id), Count: degree(id)})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// MutualFollowers returns the users that follow every one of the given ids,
// sorted by id. Unknown ids contribute an empty follower set, so the result
// is empty rather than an error.
func (g *Graph) MutualFollowers(ids ...string) []UserStat {
	if len(ids) == 0 {
		return nil
	}
	mutual := make(map[string]struct{})
	for f := range g.predecessors[ids[0]] {
		mutual[f] = struct{}{}
	}
	for _, id := range ids[1:] {
		followers := g.predecessors[id]
		for f := range mutual {
			if _, ok := followers[f]; !ok {
				delete(mutual, f)
			}
		}
	}

	out := make([]UserStat, 0, len(mutual))
	for _, f := range sortedKeys(mutual) {
		out = append(out, UserStat{UserID: f, Name: g.Name(f), Count: g.InDegree(f)})
	}
	return out
}

// Suggest recommends up to limit users for id to follow, scored by how many
// of id's followings follow them. The user itself and anyone already
// followed are excluded. Ties break toward the smaller id.
func (g *Graph) Suggest(id string, limit int) []Suggestion {
	if !g.HasNode(id) {
		return nil
	}
	following := g.successors[id]

	scores := make(map[string]int)
	for followed := range following {
		for candidate := range g.successors[followed] {
			if candidate == id {
				continue
			}
			if _, already := following[candidate]; already {
				continue
			}
			scores[candidate]++
		}
	}

	candidates := sortedKeys(setOf(scores))
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i]] > scores[candidates[j]]
	})
	if limit < len(candidates) {
		candidates = candidates[:limit]
	}

	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Suggestion{UserID: c, Name: g.Name(c), Score: scores[c]})
	}
	return out
}

// Engagement scores a user 0-100 from follower, following, and mutual
// connection counts, capped at 30/30/40 points respectively.
func (g *Graph) Engagement(id string) float64 {
	if !g.HasNode(id) {
		return 0
	}
	followers := g.predecessors[id]
	following := g.successors[id]
	mutual := 0
	for f := range followers {
		if _, ok := following[f]; ok {
			mutual++
		}
	}

	score := min(len(followers)*5, 30) + min(len(following)*5, 30) + min(mutual*5, 40)
	return float64(score)
}

// Density returns the graph density in [0, 1]: the share of possible
// directed edges that exist.
func (g *Graph) Density() float64 {
	n := g.NodeCount()
	if n <= 1 {
		return 0
	}
	return float64(g.EdgeCount()) / float64(n*(n-1))
}

// DOT renders the graph in Graphviz DOT form for the draw command.
func (g *Graph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph network {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=circle style=filled fillcolor=lightskyblue];\n")
	for _, id := range g.order {
		fmt.Fprintf(&b, "    %q [label=%q];\n", id, g.Name(id))
	}
	for _, from := range g.order {
		for _, to := range sortedKeys(g.successors[from]) {
			fmt.Fprintf(&b, "    %q -> %q;\n", from, to)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func setOf(m map[string]int) map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for k := range m {
		set[k] = struct{}{}
	}
	return set
}
