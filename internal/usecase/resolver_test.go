package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

type stubContextRepo struct {
	contexts map[string]*entity.CustomerContext
}

func newStubContextRepo() *stubContextRepo {
	return &stubContextRepo{contexts: make(map[string]*entity.CustomerContext)}
}

func (s *stubContextRepo) Get(ctx context.Context, customerID string) (*entity.CustomerContext, error) {
	record, ok := s.contexts[customerID]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (s *stubContextRepo) Save(ctx context.Context, record *entity.CustomerContext) error {
	clone := *record
	s.contexts[record.CustomerID] = &clone
	return nil
}

func (s *stubContextRepo) DeleteExpired(ctx context.Context, ttl time.Duration) (int, error) {
	return 0, nil
}

func poltronaCatalog() []entity.CatalogItem {
	now := time.Now()
	names := []string{"POLTRONA TALLA S", "POLTRONA TALLA M", "POLTRONA TALLA L"}
	items := make([]entity.CatalogItem, len(names))
	for i, name := range names {
		items[i] = entity.CatalogItem{
			ID: name, Name: name, Price: float64(20000 + 5000*i),
			Category: "POLTRONA", Active: true, LastUpdated: now,
		}
	}
	return items
}

func newTestResolver(catalog *stubCatalogRepo, contexts *stubContextRepo) ResolverUseCase {
	return NewResolverUseCase(catalog, contexts, ResolverConfig{})
}

func TestResolveProductEndToEnd(t *testing.T) {
	resolver := newTestResolver(&stubCatalogRepo{items: rugCatalog()}, newStubContextRepo())

	reply, err := resolver.ResolveProduct(context.Background(), "la de 2x3", "c1")
	if err != nil {
		t.Fatalf("ResolveProduct() error = %v", err)
	}
	want := "ALFOMBRA 2 M. X 3 M.: $30.000"
	if reply != want {
		t.Fatalf("ResolveProduct() = %q, want %q", reply, want)
	}
}

func TestResolveProductContextCarryover(t *testing.T) {
	contexts := newStubContextRepo()
	resolver := newTestResolver(&stubCatalogRepo{items: poltronaCatalog()}, contexts)

	first, err := resolver.ResolveProduct(context.Background(), "cuanto cuesta lavar mi poltrona", "c1")
	if err != nil {
		t.Fatalf("first turn error = %v", err)
	}
	if !strings.Contains(first, "tamaño") {
		t.Fatalf("first turn should ask for a size, got:\n%s", first)
	}

	second, err := resolver.ResolveProduct(context.Background(), "es mediana", "c1")
	if err != nil {
		t.Fatalf("second turn error = %v", err)
	}
	if second != "POLTRONA TALLA M: $25.000" {
		t.Fatalf("second turn = %q, want the medium armchair price", second)
	}
}

func TestResolveProductNoFalseCarryover(t *testing.T) {
	contexts := newStubContextRepo()
	resolver := newTestResolver(&stubCatalogRepo{items: poltronaCatalog()}, contexts)

	// Establish a context whose question was already answered.
	if _, err := resolver.ResolveProduct(context.Background(), "poltrona", "c1"); err != nil {
		t.Fatalf("first turn error = %v", err)
	}
	if _, err := resolver.ResolveProduct(context.Background(), "la grande", "c1"); err != nil {
		t.Fatalf("second turn error = %v", err)
	}

	// With no pending question, an unrelated short message must not
	// inherit the stored service.
	reply, err := resolver.ResolveProduct(context.Background(), "gracias", "c1")
	if err != nil {
		t.Fatalf("third turn error = %v", err)
	}
	if strings.Contains(reply, "POLTRONA") {
		t.Fatalf("short message wrongly merged with stored context: %q", reply)
	}
}

func TestResolveProductNotFound(t *testing.T) {
	resolver := newTestResolver(&stubCatalogRepo{}, newStubContextRepo())

	reply, err := resolver.ResolveProduct(context.Background(), "katana", "c1")
	if err != nil {
		t.Fatalf("ResolveProduct() error = %v", err)
	}
	if reply != FormatNotFound() {
		t.Fatalf("ResolveProduct() = %q, want the fixed not-found text", reply)
	}
}

func TestResolveProductStoreFailure(t *testing.T) {
	resolver := newTestResolver(&stubCatalogRepo{err: context.DeadlineExceeded}, newStubContextRepo())

	reply, err := resolver.ResolveProduct(context.Background(), "alfombra 2x3", "c1")
	if err == nil {
		t.Fatal("ResolveProduct() should surface the store error")
	}
	if reply != FormatTransientError() {
		t.Fatalf("ResolveProduct() = %q, want the transient-error text", reply)
	}
}

func TestResolveProductTurnsRecorded(t *testing.T) {
	contexts := newStubContextRepo()
	resolver := newTestResolver(&stubCatalogRepo{items: rugCatalog()}, contexts)

	if _, err := resolver.ResolveProduct(context.Background(), "alfombra 2x3", "c9"); err != nil {
		t.Fatalf("ResolveProduct() error = %v", err)
	}

	record, _ := contexts.Get(context.Background(), "c9")
	if record == nil {
		t.Fatal("context was not saved")
	}
	if len(record.Turns) != 2 {
		t.Fatalf("turns = %d, want customer + assistant", len(record.Turns))
	}
	if record.Turns[0].Speaker != entity.SpeakerCustomer || record.Turns[1].Speaker != entity.SpeakerAssistant {
		t.Fatalf("unexpected speakers: %v, %v", record.Turns[0].Speaker, record.Turns[1].Speaker)
	}
}
