package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"netsynth/internal/domain"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testBatch(t *testing.T) *domain.Batch {
	t.Helper()

	a, err := domain.NewVLAN(100, "10.1.2.x", "Engineering VLAN 100", 1)
	if err != nil {
		t.Fatalf("NewVLAN failed: %v", err)
	}
	b, err := domain.NewVLAN(200, "192.168.50.x", "Guest VLAN 200", 2)
	if err != nil {
		t.Fatalf("NewVLAN failed: %v", err)
	}

	seed := int64(42)
	return &domain.Batch{Kind: domain.KindVLAN, Seed: &seed, VLANs: []*domain.VLAN{a, b}}
}

func TestSaveAndGetBatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	batch := testBatch(t)

	id, err := repo.SaveBatch(ctx, batch)
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	if id == 0 {
		t.Error("expected nonzero batch id")
	}

	loaded, err := repo.GetBatch(ctx, id)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if loaded.Kind != domain.KindVLAN {
		t.Errorf("kind = %q", loaded.Kind)
	}
	if loaded.Seed == nil || *loaded.Seed != 42 {
		t.Errorf("seed = %v, want 42", loaded.Seed)
	}
	if !reflect.DeepEqual(batch.VLANs, loaded.VLANs) {
		t.Errorf("records mismatch:\nwant %+v\ngot  %+v", batch.VLANs, loaded.VLANs)
	}
}

func TestGetBatchMissing(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.GetBatch(context.Background(), 999); err == nil {
		t.Error("expected error for missing batch")
	}
}

func TestSaveOtherKinds(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rule, err := domain.NewFirewallRule("Allow-Web", domain.ProtocolTCP, "any", "10.1.2.0/24", 443, domain.ActionAllow)
	if err != nil {
		t.Fatalf("NewFirewallRule failed: %v", err)
	}
	batch := &domain.Batch{Kind: domain.KindFirewall, Rules: []*domain.FirewallRule{rule}}

	id, err := repo.SaveBatch(ctx, batch)
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	loaded, err := repo.GetBatch(ctx, id)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if !reflect.DeepEqual(batch.Rules, loaded.Rules) {
		t.Errorf("records mismatch:\nwant %+v\ngot  %+v", batch.Rules, loaded.Rules)
	}
}

func TestListBatches(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if batches, err := repo.ListBatches(ctx); err != nil || len(batches) != 0 {
		t.Fatalf("expected empty list, got %v, %v", batches, err)
	}

	first, err := repo.SaveBatch(ctx, testBatch(t))
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	second, err := repo.SaveBatch(ctx, testBatch(t))
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	batches, err := repo.ListBatches(ctx)
	if err != nil {
		t.Fatalf("ListBatches failed: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	// Newest first.
	if batches[0].ID != second || batches[1].ID != first {
		t.Errorf("unexpected order: %+v", batches)
	}
	if batches[0].Count != 2 || batches[0].Kind != domain.KindVLAN {
		t.Errorf("unexpected metadata: %+v", batches[0])
	}
	if batches[0].Seed == nil || *batches[0].Seed != 42 {
		t.Errorf("seed = %v", batches[0].Seed)
	}
}
