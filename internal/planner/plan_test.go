package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	plan := NewPlan("/data")

	assert.Equal(t, "/data", plan.Root)
	assert.NotNil(t, plan.Folders)
	assert.Empty(t, plan.Folders)
	assert.NotNil(t, plan.Dissolve)
	assert.Empty(t, plan.Dissolve)
	assert.NotNil(t, plan.Conflicts)
	assert.Empty(t, plan.Conflicts)
}

func TestPlan_HasConflicts(t *testing.T) {
	tests := []struct {
		name      string
		conflicts []Conflict
		wantHas   bool
	}{
		{
			name:      "no conflicts",
			conflicts: []Conflict{},
			wantHas:   false,
		},
		{
			name: "file conflict",
			conflicts: []Conflict{
				{Kind: ConflictFile, Path: "/data/group-1/file1.txt", Reason: "exists"},
			},
			wantHas: true,
		},
		{
			name: "folder and file conflicts",
			conflicts: []Conflict{
				{Kind: ConflictFolder, Path: "/data/group-2", Reason: "not a directory"},
				{Kind: ConflictFile, Path: "/data/group-1/file1.txt", Reason: "exists"},
			},
			wantHas: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewPlan("/data")
			plan.Conflicts = tt.conflicts
			assert.Equal(t, tt.wantHas, plan.HasConflicts())
		})
	}
}

func TestPlan_FolderConflicts(t *testing.T) {
	plan := NewPlan("/data")
	plan.AddConflict(Conflict{Kind: ConflictFile, Path: "/data/group-1/a"})
	plan.AddConflict(Conflict{Kind: ConflictFolder, Path: "/data/group-2"})
	plan.AddConflict(Conflict{Kind: ConflictFile, Path: "/data/group-1/b"})

	got := plan.FolderConflicts()
	require.Len(t, got, 1)
	assert.Equal(t, "/data/group-2", got[0].Path)
	assert.Len(t, plan.Conflicts, 3)
}

func TestPlan_SizesAndTotal(t *testing.T) {
	plan := NewPlan("/data")
	plan.Folders = []TargetFolder{
		{Index: 0, Moves: make([]Move, 3)},
		{Index: 1, Moves: make([]Move, 2)},
		{Index: 2, Moves: nil},
	}

	assert.Equal(t, []int{3, 2, 0}, plan.Sizes())
	assert.Equal(t, 5, plan.TotalFiles())
}
