package rotorblade

import (
	"context"
	"testing"
)

func TestDesignRotorBladesRespectsMaxQuantity(t *testing.T) {
	catalog := StandardCatalog()
	stream, err := DesignRotorBlades(3, 1.4*1.4*1.4, catalog, map[string]int{"stator": 0})
	if err != nil {
		t.Fatalf("DesignRotorBlades: %v", err)
	}

	ctx := context.Background()
	var last []string
	count := 0
	for {
		names, ok := stream.Next(ctx)
		if !ok {
			break
		}
		last = names
		count++
		if count > 50 {
			t.Fatal("stream did not converge")
		}
	}
	if count == 0 {
		t.Fatal("expected at least one improving sequence")
	}
	for _, name := range last {
		if name == "stator" {
			t.Fatalf("final sequence %v contains stator despite Max=0", last)
		}
	}
}
