package countup

import (
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
)

// Keyframe is the text shown from OffsetMS after the trigger.
type Keyframe struct {
	OffsetMS int64  `json:"offsetMs"`
	Display  string `json:"display"`
}

// Track is the precomputed animation of one metric.
type Track struct {
	Label     string             `json:"label"`
	Format    domain.ValueFormat `json:"format,omitempty"`
	Target    *int               `json:"target,omitempty"`
	Static    bool               `json:"static"`
	DelayMS   int64              `json:"delayMs"`
	StartMS   int64              `json:"startMs"`
	EndMS     int64              `json:"endMs"`
	Initial   string             `json:"initial"`
	Final     string             `json:"final"`
	Keyframes []Keyframe         `json:"keyframes"`
}

// Timeline runs a triggered Group on a virtual clock and records, per metric, each
// distinct display value with its offset from the trigger. StartMS and EndMS are the
// first and last animated frames. Static metrics get no keyframes.
func Timeline(metrics []domain.ResultMetric, frameInterval time.Duration) []Track {
	sched := NewManualScheduler(time.Unix(0, 0).UTC(), frameInterval)

	tracks := make([]Track, len(metrics))
	for idx, m := range metrics {
		tracks[idx] = Track{
			Label:     m.Label,
			Format:    m.Format,
			Target:    m.NumericValue,
			Static:    !m.Animated(),
			DelayMS:   (time.Duration(idx) * Stagger).Milliseconds(),
			Initial:   Initial(m),
			Keyframes: []Keyframe{},
		}
	}

	var g *Group
	g = NewGroup(metrics, sched, func(idx int, display string) {
		at := sched.Elapsed().Milliseconds()
		tr := &tracks[idx]
		if len(tr.Keyframes) == 0 {
			tr.StartMS = at
		}
		if g.Instance(idx).State() == Done {
			tr.EndMS = at
		}
		if n := len(tr.Keyframes); n > 0 && tr.Keyframes[n-1].Display == display {
			return
		}
		tr.Keyframes = append(tr.Keyframes, Keyframe{OffsetMS: at, Display: display})
	})
	defer g.Close()

	g.Trigger()
	sched.RunUntilIdle(maxFrames(len(metrics), sched.interval))

	for idx := range tracks {
		tracks[idx].Final = g.Instance(idx).Display()
	}
	return tracks
}

// maxFrames bounds a run: the last stagger plus one duration, with headroom for the
// frames spent on timer quantization.
func maxFrames(n int, interval time.Duration) int {
	total := time.Duration(n)*Stagger + Duration
	return int(total/interval) + 2*n + 8
}
