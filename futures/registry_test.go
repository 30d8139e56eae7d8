package futures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vinayprograms/futurekit/logging"
)

func TestAddAndLen(t *testing.T) {
	reg := New[string]()

	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}

	if err := reg.Add("a", newStub()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := reg.Add("b", newStub()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
}

func TestDefaultBound(t *testing.T) {
	reg := New[string]()

	max, bounded := reg.MaxSize()
	if !bounded {
		t.Fatal("default registry should be bounded")
	}
	if max != DefaultMaxSize {
		t.Errorf("MaxSize() = %d, want %d", max, DefaultMaxSize)
	}

	// Filling past the default bound keeps size at the bound.
	for i := 0; i < DefaultMaxSize+10; i++ {
		if err := reg.Add(fmt.Sprintf("key-%d", i), newStub()); err != nil {
			t.Fatalf("Add failed at %d: %v", i, err)
		}
	}
	if reg.Len() != DefaultMaxSize {
		t.Errorf("Len() = %d, want %d", reg.Len(), DefaultMaxSize)
	}
}

func TestDuplicateKey(t *testing.T) {
	reg := New[string]()

	h1 := completedStub("first")
	h2 := completedStub("second")

	if err := reg.Add("x", h1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := reg.Add("x", h2)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("Add duplicate: err = %v, want ErrDuplicateKey", err)
	}

	// The existing entry must be untouched: pop still yields h1.
	got, ok := reg.Pop("x")
	if !ok {
		t.Fatal("Pop returned not-found for existing key")
	}
	if got != Handle(h1) {
		t.Error("duplicate Add overwrote the existing handle")
	}
}

func TestNilHandle(t *testing.T) {
	reg := New[string]()

	if err := reg.Add("x", nil); !errors.Is(err, ErrNilHandle) {
		t.Errorf("Add(nil): err = %v, want ErrNilHandle", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d after rejected Add, want 0", reg.Len())
	}
}

func TestEvictionOldestFirst(t *testing.T) {
	// Scenario from the registry contract: bound 2, three adds.
	reg := New[string](WithMaxSize(2))

	h1, h2, h3 := newStub(), newStub(), newStub()
	if err := reg.Add("a", h1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := reg.Add("b", h2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := reg.Add("c", h3); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	// "a" was evicted; "b" and "c" remain.
	if _, ok := reg.Pop("a"); ok {
		t.Error("Pop(a) should report not-found after eviction")
	}
	got, ok := reg.Pop("b")
	if !ok || got != Handle(h2) {
		t.Errorf("Pop(b) = %v, %v, want h2, true", got, ok)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d after pop, want 1", reg.Len())
	}
}

func TestBoundRetainsNewest(t *testing.T) {
	reg := New[int](WithMaxSize(3))

	for i := 1; i <= 7; i++ {
		if err := reg.Add(i, newStub()); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}
	// Exactly the three most recent keys survive.
	for i := 1; i <= 4; i++ {
		if _, ok := reg.Pop(i); ok {
			t.Errorf("key %d should have been evicted", i)
		}
	}
	for i := 5; i <= 7; i++ {
		if _, ok := reg.Pop(i); !ok {
			t.Errorf("key %d should have been retained", i)
		}
	}
}

func TestZeroBound(t *testing.T) {
	reg := New[string](WithMaxSize(0))

	// Every Add evicts its own entry.
	if err := reg.Add("a", newStub()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d with zero bound, want 0", reg.Len())
	}
	if _, ok := reg.Pop("a"); ok {
		t.Error("entry should have been evicted immediately")
	}
}

func TestNegativeBoundClamped(t *testing.T) {
	reg := New[string](WithMaxSize(-5))
	max, bounded := reg.MaxSize()
	if !bounded || max != 0 {
		t.Errorf("MaxSize() = %d, %v, want 0, true", max, bounded)
	}
}

func TestUnbounded(t *testing.T) {
	reg := New[int](Unbounded())

	for i := 0; i < 500; i++ {
		if err := reg.Add(i, newStub()); err != nil {
			t.Fatalf("Add failed at %d: %v", i, err)
		}
	}
	if reg.Len() != 500 {
		t.Errorf("Len() = %d, want 500 (no eviction when unbounded)", reg.Len())
	}
	if _, bounded := reg.MaxSize(); bounded {
		t.Error("MaxSize() should report unbounded")
	}
}

func TestLoweredBoundEvictsOnNextAdd(t *testing.T) {
	reg := New[int](WithMaxSize(10))

	for i := 0; i < 6; i++ {
		if err := reg.Add(i, newStub()); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	// Lowering the bound does not evict by itself.
	reg.SetMaxSize(2)
	if reg.Len() != 6 {
		t.Fatalf("Len() = %d after SetMaxSize, want 6 (eviction is a side effect of Add)", reg.Len())
	}

	// The next Add trims all the way down, oldest first.
	if err := reg.Add(6, newStub()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}
	for i := 0; i <= 4; i++ {
		if _, ok := reg.Pop(i); ok {
			t.Errorf("key %d should have been evicted", i)
		}
	}
	for _, k := range []int{5, 6} {
		if _, ok := reg.Pop(k); !ok {
			t.Errorf("key %d should have been retained", k)
		}
	}
}

func TestPopRemoves(t *testing.T) {
	reg := New[string]()
	h := completedStub(42)

	if err := reg.Add("k", h); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, ok := reg.Pop("k")
	if !ok {
		t.Fatal("Pop reported not-found for present key")
	}
	if got != Handle(h) {
		t.Error("Pop returned a different handle")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d after Pop, want 0", reg.Len())
	}

	// A second pop and an invoke both see absence, not an error.
	if _, ok := reg.Pop("k"); ok {
		t.Error("second Pop should report not-found")
	}
	if _, found, err := reg.Invoke(context.Background(), "k", OpDone); found || err != nil {
		t.Errorf("Invoke after Pop: found=%v err=%v, want false, nil", found, err)
	}
}

func TestPopAbsentKey(t *testing.T) {
	reg := New[string]()
	if h, ok := reg.Pop("never-added"); ok || h != nil {
		t.Errorf("Pop(absent) = %v, %v, want nil, false", h, ok)
	}
}

func TestContains(t *testing.T) {
	reg := New[string]()
	h1 := newStub()
	h2 := newStub()

	if reg.Contains(h1) {
		t.Error("Contains should be false before Add")
	}

	if err := reg.Add("a", h1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := reg.Add("b", h2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if !reg.Contains(h1) {
		t.Error("Contains(h1) should be true after Add")
	}
	if !reg.Contains(h2) {
		t.Error("Contains(h2) should be true after Add")
	}

	reg.Pop("a")
	if reg.Contains(h1) {
		t.Error("Contains(h1) should be false after Pop")
	}
	if !reg.Contains(h2) {
		t.Error("Contains(h2) should still be true")
	}
}

func TestEvictionDoesNotCancel(t *testing.T) {
	reg := New[string](WithMaxSize(1))

	h1 := newStub()
	if err := reg.Add("old", h1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := reg.Add("new", newStub()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// "old" was evicted but its computation is untouched and can still
	// finish in the engine.
	if h1.cancelCalled {
		t.Error("eviction must not cancel the underlying work")
	}
	h1.complete("late result")
	if !h1.Done() {
		t.Error("evicted handle should still complete")
	}
}

func TestEvictionLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New().WithComponent("registry")
	logger.SetOutput(&buf)
	logger.SetLevel(logging.LevelDebug)

	reg := New[string](WithMaxSize(1), WithLogger(logger))
	reg.Add("a", newStub())
	reg.Add("b", newStub())
	reg.Pop("b")

	output := buf.String()
	if !strings.Contains(output, "handle_registered") {
		t.Error("expected handle_registered log")
	}
	if !strings.Contains(output, "handle_evicted") {
		t.Error("expected handle_evicted log")
	}
	if !strings.Contains(output, "handle_popped") {
		t.Error("expected handle_popped log")
	}
	if !strings.Contains(output, "key=a") {
		t.Errorf("expected evicted key in log, got: %s", output)
	}
}
