package common

import "testing"

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Greater Noida", "NOIDA") {
		t.Fatal("expected case-insensitive match")
	}
	if ContainsFold("Dwarka", "rohini") {
		t.Fatal("unexpected match")
	}
}
