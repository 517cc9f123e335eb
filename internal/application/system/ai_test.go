package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/striker/internal/domain/entity"
)

func newTestAI(rng Rand) (*AISystem, entity.Setup) {
	cfg := createTestMatchConfig()
	setup := LoadSetup(cfg)
	return NewAISystem(cfg, setup.Pitch, rng), setup
}

func assertVec(t *testing.T, want, got entity.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestAISystem_Goalkeeper(t *testing.T) {
	ai, setup := newTestAI(fixedRand(0.5))

	t.Run("far ball returns to goal line tracking ball height", func(t *testing.T) {
		st := entity.Kickoff(setup)
		st.Ball.Pos = entity.Vec2{X: 500, Y: 100}
		keeper := st.Player(1)

		intent := ai.Decide(keeper, st)

		ret, ok := intent.(ReturnIntent)
		require.True(t, ok, "got %T", intent)
		assertVec(t, entity.Vec2{X: 24, Y: 230}, ret.Target)
		assertVec(t, keeper.Pos.Direction(ret.Target), ret.Dir)
	})

	t.Run("already on the spot holds", func(t *testing.T) {
		st := entity.Kickoff(setup)
		keeper := st.Player(1)
		keeper.Pos = entity.Vec2{X: 24, Y: 300}

		assert.IsType(t, HoldIntent{}, ai.Decide(keeper, st))
	})

	t.Run("close ball in range is cleared upfield", func(t *testing.T) {
		st := entity.Kickoff(setup)
		st.Ball.Pos = entity.Vec2{X: 60, Y: 300}
		keeper := st.Player(1)

		intent := ai.Decide(keeper, st)

		kick, ok := intent.(KickIntent)
		require.True(t, ok, "got %T", intent)
		assertVec(t, entity.Vec2{X: 1}, kick.Dir)
		assert.Equal(t, keeper.KickPower, kick.Power)
		assert.Equal(t, 45, kick.Cooldown)
	})

	t.Run("away keeper clears toward the left", func(t *testing.T) {
		st := entity.Kickoff(setup)
		st.Ball.Pos = entity.Vec2{X: 940, Y: 300}

		kick, ok := ai.Decide(st.Player(6), st).(KickIntent)
		require.True(t, ok)
		assertVec(t, entity.Vec2{X: -1}, kick.Dir)
	})

	t.Run("close ball out of kick range is chased", func(t *testing.T) {
		st := entity.Kickoff(setup)
		st.Ball.Pos = entity.Vec2{X: 100, Y: 300}

		chase, ok := ai.Decide(st.Player(1), st).(ChaseIntent)
		require.True(t, ok)
		assertVec(t, entity.Vec2{X: 1}, chase.Dir)
	})

	t.Run("cooling down keeper chases instead of kicking", func(t *testing.T) {
		st := entity.Kickoff(setup)
		st.Ball.Pos = entity.Vec2{X: 60, Y: 300}
		st.Player(1).Cooldown = 3

		assert.IsType(t, ChaseIntent{}, ai.Decide(st.Player(1), st))
	})
}

func TestAISystem_Defender(t *testing.T) {
	ai, setup := newTestAI(fixedRand(0.5))

	t.Run("distant ball returns to formation", func(t *testing.T) {
		st := entity.Kickoff(setup)
		st.Ball.Pos = entity.Vec2{X: 800, Y: 300}

		ret, ok := ai.Decide(st.Player(2), st).(ReturnIntent)
		require.True(t, ok)
		// depth 0.15 + 0.30*0.8, upper slot pulled 30% toward the ball
		assertVec(t, entity.Vec2{X: 390, Y: 237}, ret.Target)
	})

	tests := []struct {
		name  string
		owner entity.EntityID
		want  Intent
	}{
		{"loose ball is chased", entity.NoOwner, ChaseIntent{}},
		{"opponent on the ball is chased", 6, ChaseIntent{}},
		{"teammate on the ball holds shape", 4, ReturnIntent{}},
		{"own touch still counts as team possession", 2, ReturnIntent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := entity.Kickoff(setup)
			st.Ball.Pos = entity.Vec2{X: 300, Y: 192}
			st.Ball.Owner = tt.owner

			assert.IsType(t, tt.want, ai.Decide(st.Player(2), st))
		})
	}
}

func TestAISystem_Forward(t *testing.T) {
	ai, setup := newTestAI(fixedRand(0.5))

	tests := []struct {
		name     string
		id       entity.EntityID
		pos      entity.Vec2
		ball     entity.Vec2
		cooldown int
		want     Intent
		wantDir  entity.Vec2
	}{
		{
			name:    "shoots inside shooting distance",
			id:      4,
			pos:     entity.Vec2{X: 700, Y: 300},
			ball:    entity.Vec2{X: 720, Y: 300},
			want:    KickIntent{},
			wantDir: entity.Vec2{X: 1},
		},
		{
			name:    "dribbles from deep",
			id:      4,
			pos:     entity.Vec2{X: 500, Y: 300},
			ball:    entity.Vec2{X: 520, Y: 300},
			want:    DribbleIntent{},
			wantDir: entity.Vec2{X: 1},
		},
		{
			name:     "cooling down chases",
			id:       4,
			pos:      entity.Vec2{X: 700, Y: 300},
			ball:     entity.Vec2{X: 720, Y: 300},
			cooldown: 10,
			want:     ChaseIntent{},
			wantDir:  entity.Vec2{X: 1},
		},
		{
			name:    "away forward shoots left",
			id:      9,
			pos:     entity.Vec2{X: 300, Y: 300},
			ball:    entity.Vec2{X: 280, Y: 300},
			want:    KickIntent{},
			wantDir: entity.Vec2{X: -1},
		},
		{
			name:    "ball beyond range returns to formation",
			id:      9,
			pos:     entity.Vec2{X: 600, Y: 300},
			ball:    entity.Vec2{X: 100, Y: 300},
			want:    ReturnIntent{},
			wantDir: entity.Vec2{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := entity.Kickoff(setup)
			p := st.Player(tt.id)
			p.Pos = tt.pos
			p.Cooldown = tt.cooldown
			st.Ball.Pos = tt.ball

			intent := ai.Decide(p, st)

			require.IsType(t, tt.want, intent)
			switch in := intent.(type) {
			case KickIntent:
				assertVec(t, tt.wantDir, in.Dir)
				assert.InDelta(t, p.KickPower*1.1, in.Power, 1e-9)
				assert.Equal(t, 30, in.Cooldown)
			case DribbleIntent, ChaseIntent:
				assertVec(t, tt.wantDir, in.Heading())
			}
		})
	}
}

func TestAISystem_ShotVariance(t *testing.T) {
	ai, setup := newTestAI(fixedRand(0))

	st := entity.Kickoff(setup)
	p := st.Player(4)
	p.Pos = entity.Vec2{X: 700, Y: 300}
	st.Ball.Pos = entity.Vec2{X: 720, Y: 300}

	kick, ok := ai.Decide(p, st).(KickIntent)
	require.True(t, ok)

	// the lowest sample rotates by the full negative spread
	assertVec(t, entity.Vec2{X: math.Cos(0.15), Y: -math.Sin(0.15)}, kick.Dir)
	assertVec(t, entity.Vec2{X: 1}, kick.Move)
}

func TestAISystem_FormationTarget(t *testing.T) {
	ai, setup := newTestAI(fixedRand(0.5))
	st := entity.Kickoff(setup)

	t.Run("sides mirror on x", func(t *testing.T) {
		centre := setup.Pitch.Center()
		home := ai.FormationTarget(st.Player(2), centre)
		away := ai.FormationTarget(st.Player(8), centre)

		assert.InDelta(t, 300, home.X, 1e-9)
		assert.InDelta(t, 700, away.X, 1e-9)
		assert.InDelta(t, home.Y, away.Y, 1e-9)
	})

	t.Run("line pushes up with the ball", func(t *testing.T) {
		fwd := st.Player(4)
		deep := ai.FormationTarget(fwd, entity.Vec2{X: 100, Y: 300})
		high := ai.FormationTarget(fwd, entity.Vec2{X: 900, Y: 300})

		assert.Greater(t, high.X, deep.X)
	})

	t.Run("partners split above and below", func(t *testing.T) {
		ball := setup.Pitch.Center()
		upper := ai.FormationTarget(st.Player(2), ball)
		lower := ai.FormationTarget(st.Player(3), ball)

		assert.Less(t, upper.Y, setup.Pitch.MidY())
		assert.Greater(t, lower.Y, setup.Pitch.MidY())
	})
}
