package system

import (
	"testing"

	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/input"
	"github.com/stretchr/testify/assert"
)

func TestEventLogSystem(t *testing.T) {
	cases := []struct {
		name    string
		verbose bool
		want    []string
	}{
		{
			name: "edges_only",
			want: []string{`input: frame=1 Started("fire", 1)`},
		},
		{
			name:    "verbose",
			verbose: true,
			want: []string{
				`input: frame=1 Started("fire", 1)`,
				`input: frame=1 Active("fire", 1)`,
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.Mapper().MouseButtons.Bind(input.MouseButtonLeft, ActionFire)

			var sink logSink
			logger := NewEventLogSystem(c.verbose)
			logger.Logf = sink.logf

			src := input.NewScripted(input.NewDeviceState().PressMouseButton(input.MouseButtonLeft))
			ecs.NewScheduler(NewInputSystem(src), logger).Update(w)

			assert.Equal(t, c.want, sink.lines)
		})
	}
}
