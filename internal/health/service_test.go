package health

import (
	"context"
	"testing"
)

func TestStatusWithoutDB(t *testing.T) {
	svc := NewService(nil)
	status := svc.Status(context.Background())
	if status["ok"] != true {
		t.Fatalf("expected ok=true, got %v", status["ok"])
	}
	if status["storage"] != "memory" {
		t.Fatalf("expected storage=memory, got %v", status["storage"])
	}
}
