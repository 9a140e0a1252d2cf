package burst

import (
	"testing"
	"time"
)

func TestComboHits(t *testing.T) {
	ms := time.Millisecond

	tests := []struct {
		name  string
		hits  []time.Duration
		wants []int
	}{
		{"first hit", []time.Duration{0}, []int{1}},
		{"quick succession", []time.Duration{0, 500 * ms, 1500 * ms}, []int{1, 2, 3}},
		{"gap resets", []time.Duration{0, 500 * ms, 3000 * ms}, []int{1, 2, 1}},
		{"window is exclusive", []time.Duration{0, 2000 * ms}, []int{1, 1}},
		{"capped", []time.Duration{0, 1, 2, 3, 4, 5, 6}, []int{1, 2, 3, 4, 5, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCombo(2*time.Second, 5)
			for i, at := range tt.hits {
				if got := c.Hit(at); got != tt.wants[i] {
					t.Errorf("hit %d at %v: multiplier %d, want %d", i, at, got, tt.wants[i])
				}
			}
		})
	}
}

func TestComboDecay(t *testing.T) {
	c := NewCombo(2*time.Second, 5)
	c.Hit(0)
	c.Hit(time.Second)

	c.Decay(3 * time.Second)
	if c.Multiplier() != 2 {
		t.Errorf("multiplier at window edge = %d, want 2", c.Multiplier())
	}

	c.Decay(3*time.Second + time.Millisecond)
	if c.Multiplier() != 1 {
		t.Errorf("multiplier after window = %d, want 1", c.Multiplier())
	}
}

func TestComboReset(t *testing.T) {
	c := NewCombo(2*time.Second, 5)
	c.Hit(0)
	c.Hit(100 * time.Millisecond)
	c.Reset()

	if got := c.Hit(200 * time.Millisecond); got != 1 {
		t.Errorf("first hit after reset = %d, want 1", got)
	}
}
