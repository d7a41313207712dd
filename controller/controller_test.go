package controller

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keys struct {
	left, right, jump bool
}

func (k *keys) Left() bool        { return k.left }
func (k *keys) Right() bool       { return k.right }
func (k *keys) JumpPressed() bool { return k.jump }

func body(grounded bool) *physics.State {
	s := physics.NewState(mgl32.Vec2{}, common.NewRect(0, 0, 10, 10), physics.Properties{Mass: 1})
	s.Grounded = grounded
	return &s
}

func TestKeyboardHorizontal(t *testing.T) {
	cases := []struct {
		name     string
		keys     keys
		grounded bool
		want     float32
	}{
		{"idle", keys{}, true, 0},
		{"left", keys{left: true}, true, -6},
		{"right", keys{right: true}, true, 6},
		{"left_wins", keys{left: true, right: true}, true, -6},
		{"air_left", keys{left: true}, false, -6 * 0.6},
		{"air_right", keys{right: true}, false, 6 * 0.6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := &Keyboard{Actions: &c.keys, MoveAccel: 6, JumpAccel: 5, AirControl: 0.6}
			b := body(c.grounded)
			b.Accel = mgl32.Vec2{3, physics.Gravity}

			k.Update(b, 1.0/60)
			assert.InDelta(t, c.want, b.Accel.X(), 1e-6)
			assert.Equal(t, physics.Gravity, b.Accel.Y())
		})
	}
}

func TestKeyboardJump(t *testing.T) {
	in := &keys{jump: true}
	k := &Keyboard{Actions: in, MoveAccel: 6, JumpAccel: 5, AirControl: 0.6}

	b := body(true)
	b.Vel = mgl32.Vec2{1, 0}
	k.Update(b, 1.0/60)
	assert.Equal(t, mgl32.Vec2{1, -5}, b.Vel)

	airborne := body(false)
	k.Update(airborne, 1.0/60)
	assert.Equal(t, mgl32.Vec2{}, airborne.Vel)

	in.jump = false
	held := body(true)
	k.Update(held, 1.0/60)
	assert.Equal(t, mgl32.Vec2{}, held.Vel)
}

func TestDefaultPolicy(t *testing.T) {
	cases := []struct {
		roll float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{0.74, 1},
		{0.75, -1},
		{0.99, -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DefaultPolicy.Direction(c.roll), "roll=%v", c.roll)
	}
}

func TestRandomWalkerRollsAfterMoveTime(t *testing.T) {
	var rolls []float64
	policy := PolicyFunc(func(roll float64) int {
		rolls = append(rolls, roll)
		return 1
	})
	w := NewRandomWalker(4, 1, policy, 7)
	b := body(true)

	w.Update(b, 0.4)
	w.Update(b, 0.4)
	assert.Empty(t, rolls)
	assert.Zero(t, b.Accel.X())

	w.Update(b, 0.4)
	require.Len(t, rolls, 1)
	assert.GreaterOrEqual(t, rolls[0], 0.0)
	assert.Less(t, rolls[0], 1.0)
	assert.Equal(t, mgl32.Vec2{4, physics.Gravity}, b.Accel)

	// 0.2s carried over, so one more 0.4s frame is not enough.
	w.Update(b, 0.4)
	assert.Len(t, rolls, 1)
	w.Update(b, 0.5)
	assert.Len(t, rolls, 2)
}

func TestRandomWalkerIsDeterministicPerSeed(t *testing.T) {
	run := func(seed int64) []float32 {
		w := NewRandomWalker(4, 0.1, nil, seed)
		b := body(true)
		var out []float32
		for range 50 {
			w.Update(b, 0.15)
			out = append(out, b.Accel.X())
		}
		return out
	}
	got := run(42)
	assert.Equal(t, got, run(42))
	for _, ax := range got {
		assert.Contains(t, []float32{-4, 0, 4}, ax)
	}
}

const wanderScript = `
if roll < 0.5 {
	dir = 0
} else if roll < 0.75 {
	dir = 1
} else {
	dir = -1
}
`

func TestScriptPolicyMatchesDefault(t *testing.T) {
	p, err := NewScriptPolicy([]byte(wanderScript))
	require.NoError(t, err)

	for _, roll := range []float64{0, 0.3, 0.5, 0.6, 0.75, 0.9} {
		assert.Equal(t, DefaultPolicy.Direction(roll), p.Direction(roll), "roll=%v", roll)
	}
}

func TestScriptPolicyClampsDirection(t *testing.T) {
	p, err := NewScriptPolicy([]byte(`dir = roll > 0.5 ? 7 : -3`))
	require.NoError(t, err)

	assert.Equal(t, 1, p.Direction(0.9))
	assert.Equal(t, -1, p.Direction(0.1))
}

func TestScriptPolicyCompileError(t *testing.T) {
	_, err := NewScriptPolicy([]byte(`dir = (`))
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	c, err := New(KindKeyboard, Config{Actions: &keys{}, MoveAccel: 6})
	require.NoError(t, err)
	assert.IsType(t, &Keyboard{}, c)

	_, err = New(KindKeyboard, Config{})
	assert.Error(t, err)

	c, err = New(KindWander, Config{MoveAccel: 4, MoveTime: 0.5})
	require.NoError(t, err)
	assert.IsType(t, &RandomWalker{}, c)

	c, err = New(KindWander, Config{Script: []byte(wanderScript)})
	require.NoError(t, err)
	assert.IsType(t, &ScriptPolicy{}, c.(*RandomWalker).Policy)

	_, err = New(KindWander, Config{Script: []byte(`dir = (`)})
	assert.Error(t, err)

	c, err = New(KindNone, Config{})
	require.NoError(t, err)
	assert.Equal(t, Inert{}, c)

	_, err = New("flying", Config{})
	assert.Error(t, err)
}
