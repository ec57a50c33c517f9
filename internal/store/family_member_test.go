package store

import (
	"testing"

	"github.com/dukerupert/tally/internal/database"
	"github.com/dukerupert/tally/internal/model"
)

func setupTestDB(t *testing.T) *FamilyMemberStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewFamilyMemberStore(db)
}

func TestMemberCRUD(t *testing.T) {
	ms := setupTestDB(t)

	member, err := ms.Create("Ada", "#FF5733", "🦊", model.RankTrackPlayful)
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if member.Name != "Ada" {
		t.Errorf("name = %q, want %q", member.Name, "Ada")
	}
	if member.RankTrack != model.RankTrackPlayful {
		t.Errorf("rank track = %q, want playful", member.RankTrack)
	}
	if member.SortOrder != 0 {
		t.Errorf("sort_order = %d, want 0", member.SortOrder)
	}

	got, err := ms.GetByID(member.ID)
	if err != nil {
		t.Fatalf("get member: %v", err)
	}
	if got.Name != "Ada" {
		t.Errorf("got name = %q, want %q", got.Name, "Ada")
	}

	updated, err := ms.Update(member.ID, "Ada L.", "#33FF57", "🦉", model.RankTrackMature)
	if err != nil {
		t.Fatalf("update member: %v", err)
	}
	if updated.Name != "Ada L." || updated.RankTrack != model.RankTrackMature {
		t.Errorf("updated = %q/%q, want Ada L./mature", updated.Name, updated.RankTrack)
	}

	if err := ms.Delete(member.ID); err != nil {
		t.Fatalf("delete member: %v", err)
	}
	got, err = ms.GetByID(member.ID)
	if err != nil {
		t.Fatalf("get deleted member: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted member")
	}
}

func TestMemberSortOrderAssignment(t *testing.T) {
	ms := setupTestDB(t)

	a, _ := ms.Create("A", "#FF5733", "🦊", model.RankTrackPlayful)
	b, _ := ms.Create("B", "#FF5733", "🐢", model.RankTrackPlayful)
	c, _ := ms.Create("C", "#FF5733", "🦉", model.RankTrackMature)

	if a.SortOrder != 0 || b.SortOrder != 1 || c.SortOrder != 2 {
		t.Errorf("sort orders = %d, %d, %d, want 0, 1, 2", a.SortOrder, b.SortOrder, c.SortOrder)
	}

	if err := ms.UpdateSortOrder([]int64{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("update sort order: %v", err)
	}

	members, err := ms.List()
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	want := []string{"C", "A", "B"}
	for i, name := range want {
		if members[i].Name != name {
			t.Errorf("members[%d].Name = %q, want %q", i, members[i].Name, name)
		}
	}
}

func TestMemberNameExists(t *testing.T) {
	ms := setupTestDB(t)

	m, _ := ms.Create("Ada", "#FF5733", "🦊", model.RankTrackPlayful)

	exists, err := ms.NameExists("ada", 0)
	if err != nil {
		t.Fatalf("name exists: %v", err)
	}
	if !exists {
		t.Error("expected case-insensitive match")
	}

	exists, err = ms.NameExists("Ada", m.ID)
	if err != nil {
		t.Fatalf("name exists: %v", err)
	}
	if exists {
		t.Error("expected no match when excluding own id")
	}
}
