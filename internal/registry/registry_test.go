package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/vovakirdan/rovelike/internal/core"
)

func def(key string) Definition {
	return Definition{
		TypeKey:     key,
		DisplayName: key,
		Movement:    core.NewMovementRules(1, true, false, core.CannotPassThrough),
	}
}

func TestCatalogRegisterAndGet(t *testing.T) {
	c := New()
	if err := c.Register(def("motor")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := c.Get("motor")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.TypeKey != "motor" {
		t.Errorf("Get returned %q", got.TypeKey)
	}
	if !c.Exists("motor") || c.Exists("brain") {
		t.Error("Exists returned wrong result")
	}
}

func TestCatalogErrors(t *testing.T) {
	c := New()
	c.Register(def("motor"))

	if err := c.Register(def("motor")); !errors.Is(err, ErrDuplicateType) {
		t.Errorf("expected ErrDuplicateType, got %v", err)
	}
	if err := c.Register(def("")); !errors.Is(err, ErrEmptyTypeKey) {
		t.Errorf("expected ErrEmptyTypeKey, got %v", err)
	}
	if _, err := c.Get("laser"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("failed registrations changed the catalog: %d entries", c.Len())
	}
}

func TestCatalogListSorted(t *testing.T) {
	c, err := FromDefinitions([]Definition{def("sensor"), def("brain"), def("motor")})
	if err != nil {
		t.Fatalf("FromDefinitions failed: %v", err)
	}

	list := c.List()
	expected := []string{"brain", "motor", "sensor"}
	if len(list) != len(expected) {
		t.Fatalf("expected %d definitions, got %d", len(expected), len(list))
	}
	for i, key := range expected {
		if list[i].TypeKey != key {
			t.Errorf("List()[%d] = %q, expected %q", i, list[i].TypeKey, key)
		}
	}
}

func TestFromDefinitionsRejectsDuplicates(t *testing.T) {
	if _, err := FromDefinitions([]Definition{def("a"), def("a")}); !errors.Is(err, ErrDuplicateType) {
		t.Errorf("expected ErrDuplicateType, got %v", err)
	}
}

func TestCatalogConcurrentReads(t *testing.T) {
	c, _ := FromDefinitions([]Definition{def("a"), def("b")})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.List()
			c.Get("a")
		}()
	}
	wg.Wait()
}
