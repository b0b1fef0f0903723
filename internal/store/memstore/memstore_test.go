package memstore

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/model"
)

// sequentialIDs hands out predictable ids so failures are readable.
func sequentialIDs() func() uuid.UUID {
	var n byte
	return func() uuid.UUID {
		n++
		var id uuid.UUID
		id[15] = n
		return id
	}
}

func names(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func equalNames(t *testing.T, what string, got []model.Item, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("%s = %v, want %v", what, g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("%s = %v, want %v", what, g, want)
		}
	}
}

func TestNew_SeedKeepsDisplayOrder(t *testing.T) {
	s := New(WithSeed("Bread", "Eggs", "  ", "bread"), WithIDFunc(sequentialIDs()))
	equalNames(t, "pending", s.Pending(), "Bread", "Eggs")
	for _, it := range s.Pending() {
		if it.ID == uuid.Nil {
			t.Fatalf("seed item %q has nil id", it.Name)
		}
	}
}

func TestAddText_InsertsAtFront(t *testing.T) {
	s := New(WithSeed("Bread"))
	it, added, err := s.AddText("  Milk \n")
	if err != nil {
		t.Fatalf("AddText returned error: %v", err)
	}
	if !added {
		t.Fatalf("AddText added = false, want true")
	}
	if it.Name != "Milk" || it.Completed || it.HasImage() {
		t.Fatalf("AddText item = %+v", it)
	}
	equalNames(t, "pending", s.Pending(), "Milk", "Bread")
	if s.Pending()[0].ID != it.ID {
		t.Fatalf("new item is not at index 0")
	}
}

func TestAddText_BlankIsSilentNoop(t *testing.T) {
	s := New(WithSeed("Bread"))
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, added, err := s.AddText(raw)
		if err != nil || added {
			t.Fatalf("AddText(%q) = added %v, err %v; want no-op", raw, added, err)
		}
	}
	equalNames(t, "pending", s.Pending(), "Bread")
}

func TestAddText_DuplicateIgnoresCase(t *testing.T) {
	s := New(WithSeed("Bread"))
	_, added, err := s.AddText("bread")
	if added {
		t.Fatalf("duplicate was added")
	}
	if !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("err = %v, want ErrDuplicateItem", err)
	}
	var dup *DuplicateItemError
	if !errors.As(err, &dup) || dup.Name != "bread" {
		t.Fatalf("err = %#v, want DuplicateItemError{Name: bread}", err)
	}
	if got := err.Error(); got != `"bread" is already on the list` {
		t.Fatalf("Error() = %q", got)
	}
	equalNames(t, "pending", s.Pending(), "Bread")
	if len(s.Purchased()) != 0 {
		t.Fatalf("purchased changed")
	}
}

func TestAddText_DuplicateCheckSkipsPurchased(t *testing.T) {
	s := New(WithSeed("Milk"))
	milk := s.Pending()[0]
	s.Move(milk.ID)

	_, added, err := s.AddText("milk")
	if err != nil || !added {
		t.Fatalf("AddText after purchase = added %v, err %v; want added", added, err)
	}
	equalNames(t, "pending", s.Pending(), "milk")
	equalNames(t, "purchased", s.Purchased(), "Milk")
}

func TestAddImage_PlaceholderNamesMayCollide(t *testing.T) {
	s := New(WithPhotoName("Photo"))
	a, okA := s.AddImage([]byte{1, 2, 3})
	b, okB := s.AddImage([]byte{4})
	if !okA || !okB {
		t.Fatalf("AddImage rejected a photo")
	}
	if a.ID == b.ID {
		t.Fatalf("photo items share an id")
	}
	equalNames(t, "pending", s.Pending(), "Photo", "Photo")
	if s.Pending()[0].ID != b.ID {
		t.Fatalf("latest photo is not at index 0")
	}
	if !s.Pending()[1].HasImage() {
		t.Fatalf("photo item lost its image")
	}
}

func TestAddImage_EmptyIsCancel(t *testing.T) {
	s := New()
	if _, ok := s.AddImage(nil); ok {
		t.Fatalf("AddImage(nil) added an item")
	}
	if p, b := s.Stats(); p != 0 || b != 0 {
		t.Fatalf("Stats = %d/%d, want 0/0", p, b)
	}
}

func TestAddImage_CopiesBytes(t *testing.T) {
	s := New()
	img := []byte{1, 2, 3}
	s.AddImage(img)
	img[0] = 9
	if s.Pending()[0].Image[0] != 1 {
		t.Fatalf("store aliases caller's image buffer")
	}
}

func TestMove_Scenario(t *testing.T) {
	s := New(WithSeed("Bread"))
	milk, _, err := s.AddText("Milk")
	if err != nil {
		t.Fatalf("AddText: %v", err)
	}
	equalNames(t, "pending", s.Pending(), "Milk", "Bread")

	if !s.Move(milk.ID) {
		t.Fatalf("Move returned false for pending item")
	}
	equalNames(t, "pending", s.Pending(), "Bread")
	equalNames(t, "purchased", s.Purchased(), "Milk")
	if !s.Purchased()[0].Completed {
		t.Fatalf("purchased item not completed")
	}
	if s.Purchased()[0].ID != milk.ID {
		t.Fatalf("move changed the id")
	}

	if !s.Move(milk.ID) {
		t.Fatalf("Move returned false for purchased item")
	}
	equalNames(t, "pending", s.Pending(), "Milk", "Bread")
	if len(s.Purchased()) != 0 {
		t.Fatalf("purchased = %v, want empty", names(s.Purchased()))
	}
	if s.Pending()[0].Completed {
		t.Fatalf("item back in pending still completed")
	}
}

func TestMove_AppendsToPurchasedInOrder(t *testing.T) {
	s := New(WithSeed("A", "B", "C"))
	for _, it := range s.Pending() {
		s.Move(it.ID)
	}
	equalNames(t, "purchased", s.Purchased(), "A", "B", "C")
}

func TestMove_RoundTripRestoresCollection(t *testing.T) {
	s := New(WithSeed("A", "B"))
	s.Move(s.Pending()[1].ID) // B bought
	s.AddImage([]byte{7})

	var all []model.Item
	all = append(all, s.Pending()...)
	all = append(all, s.Purchased()...)
	for _, it := range all {
		_, before, _ := s.Find(it.ID)
		s.Move(it.ID)
		s.Move(it.ID)
		got, after, ok := s.Find(it.ID)
		if !ok {
			t.Fatalf("item %q lost after round trip", it.Name)
		}
		if after != before {
			t.Fatalf("item %q in %v after round trip, want %v", it.Name, after, before)
		}
		if got.Completed != (after == model.Purchased) {
			t.Fatalf("item %q completed = %v in %v", it.Name, got.Completed, after)
		}
		if len(got.Image) != len(it.Image) {
			t.Fatalf("item %q image changed", it.Name)
		}
	}
}

func TestMove_UnknownIDIsNoop(t *testing.T) {
	s := New(WithSeed("Bread"))
	if s.Move(uuid.New()) {
		t.Fatalf("Move(unknown) = true")
	}
	equalNames(t, "pending", s.Pending(), "Bread")
}

func TestMove_IDNeverInBothLists(t *testing.T) {
	s := New(WithSeed("A", "B", "C"))
	ids := []uuid.UUID{s.Pending()[0].ID, s.Pending()[2].ID, s.Pending()[0].ID}
	for _, id := range ids {
		s.Move(id)
		seen := map[uuid.UUID]int{}
		for _, it := range s.Pending() {
			seen[it.ID]++
		}
		for _, it := range s.Purchased() {
			seen[it.ID]++
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("id %s appears %d times", id, n)
			}
		}
	}
}

func TestEdit_PurchasedStaysPurchased(t *testing.T) {
	s := New(WithSeed("Milk", "Bread"))
	milk := s.Pending()[0]
	s.Move(milk.ID)

	milk.Name = "Oat milk"
	milk.Completed = false
	if !s.Edit(milk) {
		t.Fatalf("Edit returned false")
	}
	equalNames(t, "pending", s.Pending(), "Bread")
	equalNames(t, "purchased", s.Purchased(), "Oat milk")
	if !s.Purchased()[0].Completed {
		t.Fatalf("edited purchased item lost completed flag")
	}
}

func TestEdit_KeepsPosition(t *testing.T) {
	s := New(WithSeed("A", "B", "C"))
	b := s.Pending()[1]
	b.Name = "Butter"
	if !s.Edit(b) {
		t.Fatalf("Edit returned false")
	}
	equalNames(t, "pending", s.Pending(), "A", "Butter", "C")
}

func TestEdit_UnknownIDIsNoop(t *testing.T) {
	s := New(WithSeed("A"))
	if s.Edit(model.Item{ID: uuid.New(), Name: "Ghost"}) {
		t.Fatalf("Edit(unknown) = true")
	}
	equalNames(t, "pending", s.Pending(), "A")
}

func TestDeleteAt(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int
		want    []string
		removed int
	}{
		{name: "single", offsets: []int{1}, want: []string{"A", "C", "D"}, removed: 1},
		{name: "several unordered", offsets: []int{3, 0}, want: []string{"B", "C"}, removed: 2},
		{name: "repeats and out of range", offsets: []int{2, 2, -1, 9}, want: []string{"A", "B", "D"}, removed: 1},
		{name: "none", offsets: nil, want: []string{"A", "B", "C", "D"}, removed: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(WithSeed("A", "B", "C", "D"))
			if got := s.DeleteAt(model.Pending, tt.offsets...); got != tt.removed {
				t.Fatalf("DeleteAt removed %d, want %d", got, tt.removed)
			}
			equalNames(t, "pending", s.Pending(), tt.want...)
		})
	}
}

func TestDeleteAt_PurchasedOnly(t *testing.T) {
	s := New(WithSeed("A", "B"))
	s.Move(s.Pending()[0].ID)
	if got := s.DeleteAt(model.Purchased, 0); got != 1 {
		t.Fatalf("DeleteAt removed %d, want 1", got)
	}
	equalNames(t, "pending", s.Pending(), "B")
	if len(s.Purchased()) != 0 {
		t.Fatalf("purchased not emptied")
	}
}

func TestClearPurchased(t *testing.T) {
	s := New(WithSeed("A", "B", "C"))
	if got := s.ClearPurchased(); got != 0 {
		t.Fatalf("ClearPurchased on empty = %d", got)
	}
	s.Move(s.Pending()[0].ID)
	s.Move(s.Pending()[0].ID)
	if got := s.ClearPurchased(); got != 2 {
		t.Fatalf("ClearPurchased = %d, want 2", got)
	}
	if len(s.Purchased()) != 0 {
		t.Fatalf("purchased not empty after clear")
	}
	equalNames(t, "pending", s.Pending(), "C")
}

func TestReadsAreCopies(t *testing.T) {
	s := New(WithSeed("A"))
	p := s.Pending()
	p[0].Name = "mutated"
	equalNames(t, "pending", s.Pending(), "A")
}

func TestReadsCopyImageBytes(t *testing.T) {
	s := New()
	it, _ := s.AddImage([]byte("abc"))

	s.Pending()[0].Image[0] = 'X'
	s.Items(model.Pending)[0].Image[1] = 'Y'
	found, _, _ := s.Find(it.ID)
	found.Image[2] = 'Z'

	if got := string(s.Pending()[0].Image); got != "abc" {
		t.Fatalf("stored image = %q, want %q", got, "abc")
	}
}

func TestNew_SeedFirstSpellingWins(t *testing.T) {
	s := New(WithSeed("milk", "Bread", "MILK", "Eggs"))
	equalNames(t, "pending", s.Pending(), "milk", "Bread", "Eggs")
	if _, _, err := s.AddText("Milk"); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("AddText(Milk) err = %v, want duplicate", err)
	}
}

func TestEdit_RenameSkipsDuplicateCheck(t *testing.T) {
	s := New(WithSeed("Milk", "Eggs"))
	eggs := s.Pending()[1]
	eggs.Name = "MILK"
	if !s.Edit(eggs) {
		t.Fatalf("Edit returned false")
	}
	equalNames(t, "pending", s.Pending(), "Milk", "MILK")
	if _, _, err := s.AddText("milk"); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("AddText(milk) err = %v, want duplicate", err)
	}
}
