package core

import "testing"

func TestPlayerTakeDamage(t *testing.T) {
	p := NewPlayer(1)

	hit, lifeLost := p.takeDamage(3)
	if !hit || lifeLost {
		t.Fatalf("takeDamage = (%v,%v), want hit without life loss", hit, lifeLost)
	}
	if p.health != playerHealth-3 {
		t.Errorf("health = %d, want %d", p.health, playerHealth-3)
	}

	// The hit shield blocks the follow-up.
	if hit, _ := p.takeDamage(3); hit {
		t.Error("shielded player took damage")
	}
	if p.health != playerHealth-3 {
		t.Errorf("health changed under shield: %d", p.health)
	}
}

func TestPlayerLifeLoss(t *testing.T) {
	p := NewPlayer(1)
	p.bombCap = 8
	p.bombRad = 4
	p.fastBomb = true

	hit, lifeLost := p.takeDamage(playerHealth)
	if !hit || !lifeLost {
		t.Fatalf("lethal hit = (%v,%v), want life loss", hit, lifeLost)
	}
	if p.Lives() != playerLives-1 {
		t.Errorf("lives = %d, want %d", p.Lives(), playerLives-1)
	}

	// A new life restores health and default inventory, with a
	// respawn immunity window.
	if p.health != playerHealth {
		t.Errorf("health = %d, want full restore", p.health)
	}
	if p.bombCap != playerBombCap || p.bombRad != playerBombRadius || p.fastBomb {
		t.Error("inventory upgrades should reset on a lost life")
	}
	if !p.Shielded() {
		t.Error("respawned player should be shielded")
	}
}

func TestPlayerFinalDeath(t *testing.T) {
	p := NewPlayer(1)
	p.lives = 1

	if _, lifeLost := p.takeDamage(playerHealth); !lifeLost {
		t.Fatal("lethal hit on the last life should report a life loss")
	}
	if p.Alive() {
		t.Error("player with no lives should not be alive")
	}
	if !p.Dying() {
		t.Error("final death should start the dying delay")
	}
	if hit, _ := p.takeDamage(1); hit {
		t.Error("dying player took damage")
	}
}

func TestPlayerAddLetter(t *testing.T) {
	p := NewPlayer(1)

	for i := 0; i < 4; i++ {
		if p.addLetter(i) {
			t.Fatalf("letter %d completed the set early", i)
		}
	}
	// Duplicates do not complete the set either.
	if p.addLetter(0) {
		t.Fatal("duplicate letter completed the set")
	}

	if !p.addLetter(4) {
		t.Fatal("fifth letter should grant the extra life")
	}
	if p.Lives() != playerLives+1 {
		t.Errorf("lives = %d, want %d", p.Lives(), playerLives+1)
	}
	if p.Letters() != [5]bool{} {
		t.Error("letter set should reset after the grant")
	}
}

func TestPlayerApplyBonusCaps(t *testing.T) {
	p := NewPlayer(1)

	for i := 0; i < 20; i++ {
		p.applyBonus(BonusBombCapacity)
		p.applyBonus(BonusBombRadius)
	}
	if p.bombCap != 8 {
		t.Errorf("bombCap = %d, want capped at 8", p.bombCap)
	}
	if p.bombRad != 4 {
		t.Errorf("bombRad = %d, want capped at 4", p.bombRad)
	}
}

func TestPlayerApplyBonusHeart(t *testing.T) {
	p := NewPlayer(1)
	p.health = 5

	p.applyBonus(BonusHeart)
	if p.health != 7 {
		t.Errorf("health after heart = %d, want 7", p.health)
	}
	p.applyBonus(BonusFullHeart)
	if p.health != playerHealth {
		t.Errorf("health after full heart = %d, want %d", p.health, playerHealth)
	}

	// Heart never overheals.
	p.applyBonus(BonusHeart)
	if p.health != playerHealth {
		t.Errorf("heart overhealed to %d", p.health)
	}
}

func TestPlayerSpeedBonusExpires(t *testing.T) {
	p := NewPlayer(1)

	p.applyBonus(BonusSpeed)
	if p.speed != playerSpeed*2 {
		t.Fatalf("speed = %v, want doubled", p.speed)
	}

	for i := 0; i < int(speedBonusTime)*defaultTickRate+5; i++ {
		p.tickTimers(1.0 / float64(defaultTickRate))
	}
	if p.speed != playerSpeed {
		t.Errorf("speed = %v, want restored after expiry", p.speed)
	}
}

func TestPlayerBombBookkeeping(t *testing.T) {
	p := NewPlayer(1)

	if !p.canPlaceBomb() {
		t.Fatal("fresh player should be able to place a bomb")
	}
	for i := 0; i < playerBombCap; i++ {
		p.bombPlaced()
		p.bombCD.Reset()
	}
	if p.canPlaceBomb() {
		t.Error("placement at full capacity should be rejected")
	}

	p.bombResolved()
	if !p.canPlaceBomb() {
		t.Error("a resolved bomb should free a slot")
	}

	// bombResolved never goes negative.
	for i := 0; i < 20; i++ {
		p.bombResolved()
	}
	if p.bombsOut != 0 {
		t.Errorf("bombsOut = %d, want 0", p.bombsOut)
	}
}
