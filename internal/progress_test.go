package internal

import "testing"

func TestProgressLabel(t *testing.T) {
	items, err := ItemSlice(8)
	if err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(items, WithSeed(1))
	if engine.ProgressLabel() != "Ready" {
		t.Fatal("The idle engine is not ready")
	}

	engine.Start()

	labels := make([]string, 0, 3)
	for !engine.IsComplete() {
		label := engine.ProgressLabel()
		if len(labels) == 0 || labels[len(labels)-1] != label {
			labels = append(labels, label)
		}
		engine.Select(engine.CurrentPairing().ItemA)
	}

	expected := []string{"Round of 8", "Round of 4", "Round of 2"}
	if len(labels) != len(expected) {
		t.Fatalf("Unexpected progress labels %v", labels)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Fatalf("Unexpected progress labels %v", labels)
		}
	}

	if engine.ProgressLabel() != "Winner!" {
		t.Fatal("The completed engine does not announce the winner")
	}

	empty := NewEngine(nil)
	if empty.ProgressLabel() != "No cards" {
		t.Fatal("The empty engine does not report missing cards")
	}
	empty.Start()
	if empty.ProgressLabel() != "No Game" {
		t.Fatal("The completed empty engine does not report no game")
	}
}

func TestProgressLabelUneven(t *testing.T) {
	items, err := ItemSlice(3)
	if err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(items, WithShuffler(SeededShuffler(SeedSingle, 0)))
	engine.Start()
	if engine.ProgressLabel() != "Round of 3" {
		t.Fatal("The first round of 3 items is not labeled")
	}

	engine.Select(items[0])
	if engine.ProgressLabel() != "Final Round!" {
		t.Fatalf("The last round is labeled %q", engine.ProgressLabel())
	}
}
