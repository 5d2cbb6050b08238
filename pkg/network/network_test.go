package network_test

import (
	"strings"
	"testing"

	"github.com/snxml/snxml/pkg/document"
	"github.com/snxml/snxml/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGraph builds the follow graph:
//
//	1 follows 2, 3
//	2 follows 1
//	3 follows 1, 2
//	4 follows 2
func testGraph() *network.Graph {
	nodes := map[string]string{
		"1": "Ahmed Ali",
		"2": "Yasser Ahmed",
		"3": "Mohamed Sherif",
		"4": "Nadia Hassan",
	}
	edges := []document.Edge{
		{From: "1", To: "2"},
		{From: "1", To: "3"},
		{From: "2", To: "1"},
		{From: "3", To: "1"},
		{From: "3", To: "2"},
		{From: "4", To: "2"},
	}
	return network.New(nodes, edges)
}

func TestGraph_Degrees(t *testing.T) {
	g := testGraph()

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, 2, g.InDegree("1"), "1 is followed by 2 and 3")
	assert.Equal(t, 3, g.InDegree("2"))
	assert.Equal(t, 2, g.OutDegree("1"))
	assert.Equal(t, 0, g.InDegree("4"))
}

func TestGraph_UnknownEdgeEndpointsBecomeNodes(t *testing.T) {
	g := network.New(map[string]string{"1": "A"}, []document.Edge{{From: "1", To: "99"}})

	assert.True(t, g.HasNode("99"))
	assert.Equal(t, "99", g.Name("99"), "unnamed nodes fall back to their id")
	assert.Equal(t, 1, g.InDegree("99"))
}

func TestMostInfluential(t *testing.T) {
	stat, ok := testGraph().MostInfluential()

	require.True(t, ok)
	assert.Equal(t, "2", stat.UserID)
	assert.Equal(t, "Yasser Ahmed", stat.Name)
	assert.Equal(t, 3, stat.Count)
}

func TestMostActive(t *testing.T) {
	stat, ok := testGraph().MostActive()

	require.True(t, ok)
	// 1 and 3 both follow two users; the smaller id wins the tie.
	assert.Equal(t, "1", stat.UserID)
	assert.Equal(t, 2, stat.Count)
}

func TestMostInfluential_EmptyGraph(t *testing.T) {
	g := network.New(nil, nil)

	_, ok := g.MostInfluential()
	assert.False(t, ok)
	_, ok = g.MostActive()
	assert.False(t, ok)
}

func TestTopInfluencers(t *testing.T) {
	top := testGraph().TopInfluencers(2)

	require.Len(t, top, 2)
	assert.Equal(t, "2", top[0].UserID)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, "1", top[1].UserID)
}

func TestTopActive_LimitLargerThanGraph(t *testing.T) {
	top := testGraph().TopActive(10)

	assert.Len(t, top, 4)
}

func TestMutualFollowers(t *testing.T) {
	g := testGraph()

	// Followers of 1: {2, 3}. Followers of 2: {1, 3, 4}. Mutual: {3}.
	mutual := g.MutualFollowers("1", "2")
	require.Len(t, mutual, 1)
	assert.Equal(t, "3", mutual[0].UserID)
	assert.Equal(t, "Mohamed Sherif", mutual[0].Name)
}

func TestMutualFollowers_NoOverlap(t *testing.T) {
	g := testGraph()

	assert.Empty(t, g.MutualFollowers("1", "4"), "4 has no followers")
}

func TestMutualFollowers_UnknownUser(t *testing.T) {
	g := testGraph()

	assert.Empty(t, g.MutualFollowers("1", "404"))
	assert.Empty(t, g.MutualFollowers())
}

func TestSuggest(t *testing.T) {
	g := testGraph()

	// 4 follows only 2; 2 follows 1, so 1 is the lone suggestion.
	suggestions := g.Suggest("4", 5)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "1", suggestions[0].UserID)
	assert.Equal(t, 1, suggestions[0].Score)
}

func TestSuggest_ExcludesSelfAndAlreadyFollowed(t *testing.T) {
	g := testGraph()

	// 1 follows 2 and 3. 2 follows 1 (self, excluded); 3 follows 1 (self)
	// and 2 (already followed). Nothing remains.
	assert.Empty(t, g.Suggest("1", 5))
}

func TestSuggest_UnknownUser(t *testing.T) {
	assert.Nil(t, testGraph().Suggest("404", 5))
}

func TestSuggest_LimitApplies(t *testing.T) {
	nodes := map[string]string{}
	edges := []document.Edge{
		{From: "1", To: "2"},
		{From: "2", To: "3"},
		{From: "2", To: "4"},
		{From: "2", To: "5"},
	}
	g := network.New(nodes, edges)

	suggestions := g.Suggest("1", 2)
	assert.Len(t, suggestions, 2)
}

func TestEngagement(t *testing.T) {
	g := testGraph()

	// User 1: 2 followers (10), 2 following (10), 2 mutual (10) = 30.
	assert.Equal(t, 30.0, g.Engagement("1"))
	assert.Equal(t, 0.0, g.Engagement("404"))
}

func TestEngagement_Caps(t *testing.T) {
	var edges []document.Edge
	// 20 followers and 20 followings, all mutual.
	for i := 0; i < 20; i++ {
		id := string(rune('a' + i))
		edges = append(edges, document.Edge{From: "x", To: id}, document.Edge{From: id, To: "x"})
	}
	g := network.New(nil, edges)

	assert.Equal(t, 100.0, g.Engagement("x"))
}

func TestDensity(t *testing.T) {
	g := testGraph()

	assert.InDelta(t, 0.5, g.Density(), 1e-9, "6 of 12 possible edges")
	assert.Zero(t, network.New(nil, nil).Density())
	assert.Zero(t, network.New(map[string]string{"1": "A"}, nil).Density())
}

func TestDOT(t *testing.T) {
	dot := testGraph().DOT()

	assert.True(t, strings.HasPrefix(dot, "digraph network {"))
	assert.Contains(t, dot, `"1" [label="Ahmed Ali"];`)
	assert.Contains(t, dot, `"1" -> "2";`)
	assert.Contains(t, dot, `"4" -> "2";`)
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestFromDocument(t *testing.T) {
	doc, err := document.Parse(`<users>
		<user><id>1</id><name>A</name>
			<followers><follower><id>2</id></follower></followers>
		</user>
		<user><id>2</id><name>B</name></user>
	</users>`)
	require.NoError(t, err)

	g := network.FromDocument(doc)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.InDegree("2"))
}
