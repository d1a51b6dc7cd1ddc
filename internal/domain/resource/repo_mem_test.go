package resource

import (
	"context"
	"testing"
	"time"
)

func TestUpdate_RefreshesLastUpdated(t *testing.T) {
	repo := NewMemRepo()
	res := &Resource{ResourceName: "Hospital Beds", TotalCount: 160, UsedCount: 137}
	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("create: %v", err)
	}
	created := res.LastUpdated

	time.Sleep(2 * time.Millisecond)
	used := 140
	got, err := repo.Update(context.Background(), res.ID, Patch{UsedCount: &used})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.LastUpdated.After(created) {
		t.Errorf("lastUpdated not refreshed: %v !> %v", got.LastUpdated, created)
	}
	if got.UsedCount != 140 || got.TotalCount != 160 {
		t.Errorf("counts = %d/%d, want 140/160", got.UsedCount, got.TotalCount)
	}
}

func TestGetByName_FirstMatchWins(t *testing.T) {
	repo := NewMemRepo()
	first := &Resource{ResourceName: "ICU Units", TotalCount: 20, UsedCount: 16}
	second := &Resource{ResourceName: "ICU Units", TotalCount: 5, UsedCount: 1}
	for _, res := range []*Resource{first, second} {
		if err := repo.Create(context.Background(), res); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.GetByName(context.Background(), "ICU Units")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("got id %d, want first insert %d", got.ID, first.ID)
	}
}

func TestGetByName_Missing(t *testing.T) {
	repo := NewMemRepo()
	if _, err := repo.GetByName(context.Background(), "MRI Scanners"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_ByNumericID(t *testing.T) {
	repo := NewMemRepo()
	res := &Resource{ResourceName: "Ventilators", TotalCount: 30, UsedCount: 12}
	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := repo.Delete(context.Background(), res.ID)
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	if deleted, _ := repo.Delete(context.Background(), res.ID); deleted {
		t.Error("second delete reported success")
	}
	all, _ := repo.List(context.Background())
	if len(all) != 0 {
		t.Errorf("list has %d items after delete", len(all))
	}
}
