package game

import (
	"fmt"
	"time"
)

// Summary describes a finished run. It lives in memory only.
type Summary struct {
	SessionID string    `json:"session_id"`
	Variant   string    `json:"variant"`
	Cause     Cause     `json:"cause"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Ticks     int       `json:"ticks"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func NewSummary(g *Game) Summary {
	return Summary{
		SessionID: g.UUID,
		Variant:   g.Variant.Name,
		Cause:     g.Cause(),
		Score:     g.Score(),
		Length:    len(g.snake.Body),
		Ticks:     g.Steps,
		StartTime: g.StartTime,
		EndTime:   g.StartTime.Add(g.ElapsedTime()),
	}
}

// Duration returns how long the run lasted
func (s Summary) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

func (s Summary) String() string {
	cause := s.Cause
	if cause == CauseNone {
		cause = "running"
	}
	return fmt.Sprintf("variant=%s cause=%s score=%d length=%d ticks=%d duration=%.1fs",
		s.Variant, cause, s.Score, s.Length, s.Ticks, s.Duration().Seconds())
}
