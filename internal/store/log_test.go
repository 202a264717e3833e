package store

import (
	"context"
	"strings"
	"testing"

	"github.com/tgasparic/paketnik/internal/db"
	"github.com/tgasparic/paketnik/internal/model"
)

func TestLogIsAppendOnly(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Li", "Package A", "12345678901")

	before, _ := GetItemLog(ctx, database, item.ID)

	AdvanceItemStatus(ctx, database, item.ID, model.StatusNotified)
	after, _ := GetItemLog(ctx, database, item.ID)

	if len(after) != len(before)+1 {
		t.Fatalf("expected log to grow by 1, had %d now %d", len(before), len(after))
	}
	// Prior entries are untouched.
	for i, e := range before {
		if after[i].Entry != e.Entry || after[i].ID != e.ID {
			t.Errorf("entry %d changed: %+v vs %+v", i, e, after[i])
		}
	}
}

func TestRenderLog(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Li", "Package A", "12345678901")
	AdvanceItemStatus(ctx, database, item.ID, model.StatusNotified)

	entries, _ := GetItemLog(ctx, database, item.ID)
	text := RenderLog(entries)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), text)
	}
	if !strings.HasPrefix(lines[0], "Item created at ") {
		t.Errorf("unexpected creation line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Status updated to notified at ") {
		t.Errorf("unexpected transition line: %q", lines[1])
	}
	if !strings.HasSuffix(text, "\n") {
		t.Error("expected trailing newline")
	}
}
