package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThrottle_RejectsNonPositiveFactor(t *testing.T) {
	tests := []struct {
		name   string
		factor int
		ok     bool
	}{
		{name: "zero factor", factor: 0, ok: false},
		{name: "negative factor", factor: -3, ok: false},
		{name: "process every frame", factor: 1, ok: true},
		{name: "process every other frame", factor: 2, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, err := NewThrottle(tt.factor)
			if tt.ok {
				require.NoError(t, err)
				require.NotNil(t, gate)
			} else {
				assert.Error(t, err)
				assert.Nil(t, gate)
			}
		})
	}
}

func TestThrottle_AdmitsEveryKthFrame(t *testing.T) {
	tests := []struct {
		name     string
		factor   int
		captured int
		admitted int
	}{
		{name: "factor 1 admits all", factor: 1, captured: 30, admitted: 30},
		{name: "factor 2 admits half", factor: 2, captured: 30, admitted: 15},
		{name: "factor 3 admits a third", factor: 3, captured: 30, admitted: 10},
		{name: "factor 3 uneven tail", factor: 3, captured: 31, admitted: 10},
		{name: "factor larger than stream", factor: 10, captured: 9, admitted: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, err := NewThrottle(tt.factor)
			require.NoError(t, err)

			admitted := 0
			for i := 0; i < tt.captured; i++ {
				if gate.Admit() {
					admitted++
				}
			}
			assert.Equal(t, tt.admitted, admitted)
		})
	}
}

func TestThrottle_AdmissionPhase(t *testing.T) {
	// With factor k the first admitted frame is the kth capture, and
	// admissions repeat with period k from there.
	gate, err := NewThrottle(3)
	require.NoError(t, err)

	var pattern []bool
	for i := 0; i < 9; i++ {
		pattern = append(pattern, gate.Admit())
	}
	assert.Equal(t, []bool{false, false, true, false, false, true, false, false, true}, pattern)
}
