package storage

import (
	"context"
	"testing"
	"time"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

func TestMemoryContextMissingIsNil(t *testing.T) {
	repo := NewMemoryContextRepository()

	record, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record != nil {
		t.Fatalf("Get() = %v, want nil for an unknown customer", record)
	}
}

func TestMemoryContextRoundTrip(t *testing.T) {
	repo := NewMemoryContextRepository()
	ctx := context.Background()

	saved := &entity.CustomerContext{
		CustomerID:  "c1",
		LastService: "poltrona",
		Slots:       entity.VariantSlots{Size: "mediana"},
		LastUsed:    time.Now(),
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if loaded == nil || loaded.LastService != "poltrona" || loaded.Slots.Size != "mediana" {
		t.Fatalf("Get() = %+v, want the saved context", loaded)
	}

	// Mutating the loaded copy must not leak into the store.
	loaded.LastService = "cortina"
	again, _ := repo.Get(ctx, "c1")
	if again.LastService != "poltrona" {
		t.Fatalf("store was mutated through a returned copy: %q", again.LastService)
	}
}

func TestMemoryContextDeleteExpired(t *testing.T) {
	repo := NewMemoryContextRepository()
	ctx := context.Background()

	_ = repo.Save(ctx, &entity.CustomerContext{CustomerID: "old", LastUsed: time.Now().Add(-48 * time.Hour)})
	_ = repo.Save(ctx, &entity.CustomerContext{CustomerID: "fresh", LastUsed: time.Now()})

	removed, err := repo.DeleteExpired(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("DeleteExpired() error = %v", err)
	}
	if removed != 1 {
		t.Fatalf("DeleteExpired() = %d, want 1", removed)
	}
	if record, _ := repo.Get(ctx, "old"); record != nil {
		t.Fatal("expired context should be gone")
	}
	if record, _ := repo.Get(ctx, "fresh"); record == nil {
		t.Fatal("fresh context should survive")
	}
}
