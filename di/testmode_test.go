package di

import "testing"

type mockableService interface {
	Name() string
}

type realService struct{}

func (r *realService) Name() string { return "real" }

type fakeService struct{}

func (f *fakeService) Name() string { return "fake" }

func TestMockFor_OverridesResolutionWhileTestModeEnabled(t *testing.T) {
	c := NewContainer()

	if err := Register[mockableService](c, Singleton, func() mockableService { return &realService{} }); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	before, err := Resolve[mockableService](c, nil)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if before.Name() != "real" {
		t.Fatalf("expected 'real' before mocking, got %q", before.Name())
	}

	c.EnableTestMode()
	if err := MockFor[mockableService](c, &fakeService{}); err != nil {
		t.Fatalf("unexpected mock error: %v", err)
	}

	during, err := Resolve[mockableService](c, nil)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if during.Name() != "fake" {
		t.Fatalf("expected 'fake' while test mode enabled, got %q", during.Name())
	}

	c.DisableTestMode()

	after, err := Resolve[mockableService](c, nil)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if after.Name() != "real" {
		t.Fatalf("expected 'real' after disabling test mode, got %q", after.Name())
	}
}

func TestUnmockFor_RemovesSingleMock(t *testing.T) {
	c := NewContainer()

	if err := Register[mockableService](c, Transient, func() mockableService { return &realService{} }); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	c.EnableTestMode()
	defer c.DisableTestMode()

	if err := MockFor[mockableService](c, &fakeService{}); err != nil {
		t.Fatalf("unexpected mock error: %v", err)
	}
	UnmockFor[mockableService](c)

	got, err := Resolve[mockableService](c, nil)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if got.Name() != "real" {
		t.Fatalf("expected 'real' once mock removed, got %q", got.Name())
	}
}

func TestDisableTestMode_EvictsOnlySingletonsBuiltDuringTestMode(t *testing.T) {
	c := NewContainer()
	builds := 0

	if err := Register[*realService](c, Singleton, func() *realService {
		builds++
		return &realService{}
	}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	// Build the real singleton before test mode ever runs.
	if _, err := Resolve[*realService](c, nil); err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if builds != 1 {
		t.Fatalf("expected 1 build before test mode, got %d", builds)
	}

	c.EnableTestMode()
	c.DisableTestMode()

	if _, err := Resolve[*realService](c, nil); err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if builds != 1 {
		t.Fatalf("expected the pre-existing singleton to survive test mode toggling untouched, got %d builds", builds)
	}
}

func TestMock_RejectsEmptyKeyAndNilValue(t *testing.T) {
	c := NewContainer()

	if err := c.Mock("", "value"); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.Mock("key", nil); err == nil {
		t.Fatal("expected error for nil value")
	}
}

func TestStats_TracksResolvedAndFailedCounts(t *testing.T) {
	c := NewContainer()

	if err := Register[*realService](c, Transient, func() *realService { return &realService{} }); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	// realService's constructor takes no parameters, so it resolves
	// fine; depC needs depA/depB, neither of which is registered
	// here, so resolving it exercises the dependency-tree failure path.
	if err := Register[*depC](c, Transient, func(a *depA, b *depB) *depC { return &depC{a: a, b: b} }); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	if _, err := Resolve[*realService](c, nil); err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if _, err := Resolve[*depC](c, nil); err == nil {
		t.Fatal("expected resolve error for service with unregistered dependencies")
	}

	stats := c.Stats()
	if stats.ResolvedCount != 1 {
		t.Fatalf("expected ResolvedCount 1, got %d", stats.ResolvedCount)
	}
	if stats.FailedCount != 1 {
		t.Fatalf("expected FailedCount 1, got %d", stats.FailedCount)
	}
}
