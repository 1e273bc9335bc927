package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(v int64) *int64 { return &v }

func collectIDs(roots []*ChannelNode) []int64 {
	var ids []int64
	var walk func(nodes []*ChannelNode)
	walk = func(nodes []*ChannelNode) {
		for _, n := range nodes {
			ids = append(ids, n.ID)
			walk(n.Children)
		}
	}
	walk(roots)
	return ids
}

func TestBuildChannelTree_Empty(t *testing.T) {
	roots := BuildChannelTree(nil, DanglingDrop)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}

func TestBuildChannelTree_SingleRoot(t *testing.T) {
	roots := BuildChannelTree([]ChannelRecord{{ID: 7, Name: "lobby"}}, DanglingDrop)

	require.Len(t, roots, 1)
	assert.Equal(t, int64(7), roots[0].ID)
	assert.Equal(t, "lobby", roots[0].Name)
	assert.Nil(t, roots[0].ParentID)
	assert.Empty(t, roots[0].Children)
}

func TestBuildChannelTree_OrphanDropped(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "General"},
		{ID: 2, Name: "Voice", ParentID: id(1)},
		{ID: 3, Name: "Orphan", ParentID: id(99)},
	}

	roots := BuildChannelTree(records, DanglingDrop)

	expected := []*ChannelNode{
		{
			ID:   1,
			Name: "General",
			Children: []*ChannelNode{
				{ID: 2, Name: "Voice", ParentID: id(1), Children: []*ChannelNode{}},
			},
		},
	}
	assert.Equal(t, expected, roots)
	assert.NotContains(t, collectIDs(roots), int64(3))
}

func TestBuildChannelTree_OrphanPromoted(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "General"},
		{ID: 2, Name: "Voice", ParentID: id(1)},
		{ID: 3, Name: "Orphan", ParentID: id(99)},
	}

	roots := BuildChannelTree(records, DanglingPromote)

	require.Len(t, roots, 2)
	assert.Equal(t, int64(1), roots[0].ID)
	assert.Equal(t, int64(3), roots[1].ID)
	assert.Equal(t, int64(99), *roots[1].ParentID)
}

func TestBuildChannelTree_DroppedSubtree(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "lost-category", ParentID: id(42)},
		{ID: 2, Name: "inside", ParentID: id(1)},
		{ID: 3, Name: "top"},
	}

	assert.Equal(t, []int64{3}, collectIDs(BuildChannelTree(records, DanglingDrop)))
	assert.Equal(t, []int64{1, 2, 3}, collectIDs(BuildChannelTree(records, DanglingPromote)))
}

func TestBuildChannelTree_DuplicateIDLastWins(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "A"},
		{ID: 1, Name: "B"},
	}

	roots := BuildChannelTree(records, DanglingDrop)

	require.Len(t, roots, 1)
	assert.Equal(t, "B", roots[0].Name)
}

func TestBuildChannelTree_DuplicateChildAttachedOnce(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "cat"},
		{ID: 2, Name: "first", ParentID: id(1)},
		{ID: 3, Name: "other", ParentID: id(1)},
		{ID: 2, Name: "second", ParentID: id(1)},
	}

	roots := BuildChannelTree(records, DanglingDrop)

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "second", roots[0].Children[0].Name)
	assert.Equal(t, "other", roots[0].Children[1].Name)
}

func TestBuildChannelTree_ChildrenFollowInputOrderNotPosition(t *testing.T) {
	records := []ChannelRecord{
		{ID: 10, Name: "z-last", ParentID: id(1), Position: 0},
		{ID: 1, Name: "category", Position: 5},
		{ID: 11, Name: "a-first", ParentID: id(1), Position: 9},
		{ID: 12, Name: "m-middle", ParentID: id(1), Position: 1},
	}

	roots := BuildChannelTree(records, DanglingDrop)

	require.Len(t, roots, 1)
	var names []string
	for _, c := range roots[0].Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"z-last", "a-first", "m-middle"}, names)
}

func TestBuildChannelTree_ChildrenMatchParentReferences(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "text"},
		{ID: 2, Name: "voice"},
		{ID: 3, Name: "rules", ParentID: id(1)},
		{ID: 4, Name: "lounge", ParentID: id(2)},
		{ID: 5, Name: "news", ParentID: id(1)},
		{ID: 6, Name: "afk", ParentID: id(2)},
		{ID: 7, Name: "announcements"},
	}

	roots := BuildChannelTree(records, DanglingDrop)

	byID := map[int64]*ChannelNode{}
	var walk func(nodes []*ChannelNode)
	walk = func(nodes []*ChannelNode) {
		for _, n := range nodes {
			byID[n.ID] = n
			walk(n.Children)
		}
	}
	walk(roots)

	require.Len(t, byID, len(records))
	for _, node := range byID {
		var expected []int64
		for _, rec := range records {
			if rec.ParentID != nil && *rec.ParentID == node.ID {
				expected = append(expected, rec.ID)
			}
		}
		var actual []int64
		for _, c := range node.Children {
			actual = append(actual, c.ID)
		}
		assert.Equal(t, expected, actual, "children of %d", node.ID)
	}
}

func TestBuildChannelTree_EveryRecordOnce(t *testing.T) {
	records := []ChannelRecord{
		{ID: 4, Name: "d", ParentID: id(3)},
		{ID: 1, Name: "a"},
		{ID: 3, Name: "c", ParentID: id(2)},
		{ID: 2, Name: "b", ParentID: id(1)},
		{ID: 5, Name: "gone", ParentID: id(1000)},
	}

	ids := collectIDs(BuildChannelTree(records, DanglingDrop))

	assert.ElementsMatch(t, []int64{1, 2, 3, 4}, ids)
}

func TestBuildChannelTree_Idempotent(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "General"},
		{ID: 2, Name: "Voice", ParentID: id(1)},
		{ID: 3, Name: "Stage", ParentID: id(2)},
		{ID: 4, Name: "Orphan", ParentID: id(77)},
	}

	assert.Equal(t, BuildChannelTree(records, DanglingDrop), BuildChannelTree(records, DanglingDrop))
	assert.Equal(t, BuildChannelTree(records, DanglingPromote), BuildChannelTree(records, DanglingPromote))
}

func TestBuildChannelTree_SelfParentUnreachable(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "loop", ParentID: id(1)},
		{ID: 2, Name: "fine"},
	}

	roots := BuildChannelTree(records, DanglingPromote)

	assert.Equal(t, []int64{2}, collectIDs(roots))
}

func TestBuildChannelTree_DeepChain(t *testing.T) {
	const depth = 10000
	records := make([]ChannelRecord, 0, depth)
	records = append(records, ChannelRecord{ID: 0, Name: "root"})
	for i := int64(1); i < depth; i++ {
		records = append(records, ChannelRecord{ID: i, Name: "n", ParentID: id(i - 1)})
	}

	roots := BuildChannelTree(records, DanglingDrop)

	require.Len(t, roots, 1)
	assert.Equal(t, depth, CountChannels(roots))
}

func TestDanglingChannels(t *testing.T) {
	records := []ChannelRecord{
		{ID: 1, Name: "General"},
		{ID: 2, Name: "Voice", ParentID: id(1)},
		{ID: 3, Name: "Orphan", ParentID: id(99)},
		{ID: 4, Name: "Lost", ParentID: id(98)},
	}

	dangling := DanglingChannels(records)

	require.Len(t, dangling, 2)
	assert.Equal(t, "Orphan", dangling[0].Name)
	assert.Equal(t, "Lost", dangling[1].Name)
	assert.Empty(t, DanglingChannels(records[:2]))
}

func TestCountChannels(t *testing.T) {
	assert.Equal(t, 0, CountChannels(nil))

	roots := BuildChannelTree([]ChannelRecord{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b", ParentID: id(1)},
		{ID: 3, Name: "c"},
	}, DanglingDrop)
	assert.Equal(t, 3, CountChannels(roots))
}

func TestParseDanglingPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected DanglingPolicy
		wantErr  bool
	}{
		{"drop", DanglingDrop, false},
		{"promote", DanglingPromote, false},
		{"", DanglingDrop, false},
		{"keep", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParseDanglingPolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}
