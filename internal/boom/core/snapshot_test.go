package core

import (
	"testing"

	"github.com/vovakirdan/tui-boom/internal/geom"
)

func TestSnapshot(t *testing.T) {
	r := newTestRound(t)
	r.maze.Add(NewEnemy(EnemyGhost, geom.V(5, 5)))
	r.maze.Add(NewBoss(geom.V(4, 8)))
	r.placeBomb(r.Players()[0])

	s := r.Snapshot()
	if s.Rows != DefaultRows || s.Cols != DefaultCols {
		t.Errorf("snapshot size = %dx%d", s.Rows, s.Cols)
	}
	if s.State != RoundRunning {
		t.Errorf("snapshot state = %v, want Running", s.State)
	}

	byKind := make(map[Kind]EntitySnapshot)
	for _, e := range s.Entities {
		byKind[e.Kind] = e
	}
	if e, ok := byKind[KindPlayer]; !ok || e.Player != 1 {
		t.Error("player missing from snapshot")
	}
	if e, ok := byKind[KindEnemy]; !ok || e.Enemy != EnemyGhost {
		t.Error("enemy kind missing from snapshot")
	}
	if e, ok := byKind[KindBoss]; !ok || e.HealthFrac != 1 {
		t.Error("boss health fraction missing from snapshot")
	}
	if _, ok := byKind[KindBomb]; !ok {
		t.Error("bomb missing from snapshot")
	}

	if len(s.Players) != 1 {
		t.Fatalf("%d player snapshots, want 1", len(s.Players))
	}
	hud := s.Players[0]
	if hud.Lives != playerLives || hud.Health != playerHealth || hud.MaxHP != playerHealth {
		t.Errorf("HUD vitals = %+v", hud)
	}
	if hud.Bombs != playerBombCap-1 {
		t.Errorf("placeable bombs = %d, want %d", hud.Bombs, playerBombCap-1)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	// Mutating the round after taking a snapshot must not change it.
	r := newTestRound(t)
	s := r.Snapshot()
	tickBefore := s.Tick
	n := len(s.Entities)

	r.maze.Add(NewCoin(geom.V(3, 3)))
	r.Tick(nil)

	if s.Tick != tickBefore || len(s.Entities) != n {
		t.Error("snapshot changed after the round advanced")
	}
}
