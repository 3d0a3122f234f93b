package engine

import "testing"

func TestSceneAdd(t *testing.T) {
	scene := NewScene("test")
	obj := NewObject("player", nil, nil)

	if err := scene.Add(obj); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if scene.Len() != 1 {
		t.Errorf("Expected 1 object, got %d", scene.Len())
	}
	if scene.Find("player") != obj {
		t.Error("Find should return the added object")
	}
}

func TestSceneAddDuplicate(t *testing.T) {
	scene := NewScene("test")
	if err := scene.Add(NewObject("wall", nil, nil)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := scene.Add(NewObject("wall", nil, nil)); err == nil {
		t.Error("Expected error adding a duplicate name")
	}
	if scene.Len() != 1 {
		t.Errorf("Expected 1 object after duplicate add, got %d", scene.Len())
	}
}

func TestSceneRemove(t *testing.T) {
	scene := NewScene("test")
	scene.Add(NewObject("a", nil, nil))
	scene.Add(NewObject("b", nil, nil))

	scene.Remove("a")
	if scene.Len() != 1 {
		t.Errorf("Expected 1 object after remove, got %d", scene.Len())
	}
	if scene.Find("a") != nil {
		t.Error("Removed object should not be findable")
	}

	// Unknown names are a no-op.
	scene.Remove("missing")
	if scene.Len() != 1 {
		t.Errorf("Expected 1 object after bogus remove, got %d", scene.Len())
	}
}

func TestSceneNamesOrder(t *testing.T) {
	scene := NewScene("test")
	scene.Add(NewObject("zebra", nil, nil))
	scene.Add(NewObject("apple", nil, nil))
	scene.Add(NewObject("mango", nil, nil))

	names := scene.Names()
	if len(names) != 3 || names[0] != "zebra" || names[1] != "apple" || names[2] != "mango" {
		t.Errorf("Expected insertion order, got %v", names)
	}

	sorted := scene.SortedNames()
	if sorted[0] != "apple" || sorted[1] != "mango" || sorted[2] != "zebra" {
		t.Errorf("Expected lexical order, got %v", sorted)
	}
}

func TestSceneFindMissing(t *testing.T) {
	scene := NewScene("test")
	if scene.Find("ghost") != nil {
		t.Error("Find should return nil for unknown names")
	}
}
