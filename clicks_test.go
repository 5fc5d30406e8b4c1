package screenspace

import (
	"testing"
	"time"
)

func TestClickCounter(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return base.Add(time.Duration(ms) * time.Millisecond) }

	type rec struct {
		b    Button
		pos  Vec2
		ms   int
		want int
	}
	tests := []struct {
		name string
		recs []rec
	}{
		{"single", []rec{{ButtonLeft, Vec2{}, 0, 1}}},
		{"double", []rec{
			{ButtonLeft, Vec2{10, 10}, 0, 1},
			{ButtonLeft, Vec2{11, 10}, 200, 2},
		}},
		{"triple wraps", []rec{
			{ButtonLeft, Vec2{}, 0, 1},
			{ButtonLeft, Vec2{}, 100, 2},
			{ButtonLeft, Vec2{}, 200, 1},
			{ButtonLeft, Vec2{}, 300, 2},
		}},
		{"too slow", []rec{
			{ButtonLeft, Vec2{}, 0, 1},
			{ButtonLeft, Vec2{}, 501, 1},
		}},
		{"at interval", []rec{
			{ButtonLeft, Vec2{}, 0, 1},
			{ButtonLeft, Vec2{}, 500, 2},
		}},
		{"too far", []rec{
			{ButtonLeft, Vec2{0, 0}, 0, 1},
			{ButtonLeft, Vec2{5, 0}, 100, 1},
		}},
		{"other button", []rec{
			{ButtonLeft, Vec2{}, 0, 1},
			{ButtonRight, Vec2{}, 100, 1},
		}},
		{"clock backwards", []rec{
			{ButtonLeft, Vec2{}, 100, 1},
			{ButtonLeft, Vec2{}, 0, 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClickCounter(Config{})
			for i, r := range tt.recs {
				if got := c.Record(r.b, r.pos, at(r.ms)); got != r.want {
					t.Errorf("record %d: Record() = %d, want %d", i, got, r.want)
				}
			}
		})
	}
}

func TestClickCounterConfig(t *testing.T) {
	c := NewClickCounter(Config{DoubleClickInterval: 50 * time.Millisecond, DoubleClickDistance: 20})
	base := time.Unix(100, 0)
	c.Record(ButtonLeft, Vec2{}, base)
	if got := c.Record(ButtonLeft, Vec2{15, 0}, base.Add(40*time.Millisecond)); got != 2 {
		t.Errorf("Record() = %d, want 2", got)
	}
	c.Record(ButtonLeft, Vec2{}, base.Add(time.Second))
	if got := c.Record(ButtonLeft, Vec2{}, base.Add(time.Second+60*time.Millisecond)); got != 1 {
		t.Errorf("Record() = %d past interval, want 1", got)
	}
}

func TestClickCounterReset(t *testing.T) {
	c := NewClickCounter(Config{})
	now := time.Unix(100, 0)
	c.Record(ButtonLeft, Vec2{}, now)
	c.Reset()
	if got := c.Record(ButtonLeft, Vec2{}, now.Add(time.Millisecond)); got != 1 {
		t.Errorf("Record() after Reset = %d, want 1", got)
	}
}
