package game

import "testing"

func TestNewProjectile(t *testing.T) {
	proj := NewProjectile(3, 1, 2, 30, 40, 1)
	if proj.Controller != 3 {
		t.Errorf("expected owner 3, got %d", proj.Controller)
	}
	if proj.Kind() != KindProjectile {
		t.Errorf("expected kind projectile, got %s", proj.Kind())
	}
	if !near(proj.Damage(), 5) {
		t.Errorf("expected damage 5, got %f", proj.Damage())
	}
}

func TestProjectileDamageFixedAtLaunch(t *testing.T) {
	proj := NewProjectile(0, 0, 0, 30, 40, 1)
	proj.VX = 300
	proj.VY = 0
	proj.Advance(0.01)
	if !near(proj.Damage(), 5) {
		t.Errorf("damage should not change after launch, got %f", proj.Damage())
	}
}

func TestProjectileAdvance(t *testing.T) {
	proj := NewProjectile(0, 50, 0, 60, 0, 1)
	proj.Advance(1)
	if proj.X != 110 || proj.Y != 0 {
		t.Errorf("expected (110,0), got (%f,%f)", proj.X, proj.Y)
	}
	if !proj.OutOfBounds() {
		t.Error("projectile at distance 110 should be out of bounds")
	}
}

func TestProjectileInsideArena(t *testing.T) {
	proj := NewProjectile(0, 0, 0, 0, 0, 1)
	proj.X, proj.Y = 60, 80
	if proj.OutOfBounds() {
		t.Error("distance 100 is still inside the arena")
	}
}

func TestProjectileRender(t *testing.T) {
	proj := NewProjectile(1, 4, 5, 0, 0, 1)
	sink := &recordSink{}
	proj.Render(sink)
	if len(sink.circles) != 1 || len(sink.texts) != 0 {
		t.Fatalf("expected a single outline, got %d circles %d labels", len(sink.circles), len(sink.texts))
	}
	c := sink.circles[0]
	if c.shape != ShapeProjectile || c.x != 4 || c.y != 5 || c.r != 1 || c.controller != 1 {
		t.Errorf("unexpected circle %+v", c)
	}
}
