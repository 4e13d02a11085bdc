// Command actiontrace replays a recorded device trace through a binding
// profile and prints every action notification, one per line:
//
//	frame=<n> <Kind> <action> <value>
//
// When the trace ends with actions still held, one extra empty frame is
// replayed so every action reports Finished.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/milk9111/actionmap/input"
	"github.com/milk9111/actionmap/prefabs"
)

func main() {
	profileName := flag.String("profile", "default.yaml", "binding profile in prefabs/ (.yaml, .yml or .toml)")
	tracePath := flag.String("trace", "", "YAML trace of device frames")
	edgesOnly := flag.Bool("edges", false, "omit Active notifications")
	flag.Parse()

	if *tracePath == "" {
		log.Fatal("actiontrace: -trace is required")
	}

	profile, err := prefabs.LoadProfile(*profileName)
	if err != nil {
		log.Fatalf("actiontrace: %v", err)
	}
	frames, err := prefabs.LoadTrace(*tracePath)
	if err != nil {
		log.Fatalf("actiontrace: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := replay(out, profile, frames, *edgesOnly); err != nil {
		log.Fatalf("actiontrace: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("actiontrace: %v", err)
	}
}

func replay(w io.Writer, profile *prefabs.Profile, frames []*input.DeviceState, edgesOnly bool) error {
	m := input.NewMapper()
	if err := profile.Apply(m); err != nil {
		return err
	}

	var q input.Queue
	src := input.NewScripted(frames...)
	state := input.NewDeviceState()
	frame := 0
	step := func() error {
		state.Clear()
		src.Sample(state)
		m.Update(state, &q)
		for _, evt := range q.Drain() {
			if edgesOnly && evt.Kind == input.EventActive {
				continue
			}
			if _, err := fmt.Fprintf(w, "frame=%d %s %s %g\n", frame, evt.Kind, evt.Action, evt.Value); err != nil {
				return err
			}
		}
		frame++
		return nil
	}
	for src.Remaining() > 0 {
		if err := step(); err != nil {
			return err
		}
	}
	if slices.ContainsFunc(m.Actions(), m.Pressed) {
		return step()
	}
	return nil
}
