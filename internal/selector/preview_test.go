package selector

import (
	"os"
	"testing"

	"omarchy.dev/screensaver/internal/platform"
)

type fakeProcess struct {
	terminated bool
	reaped     bool
}

func (p *fakeProcess) Pid() int { return 42 }

func (p *fakeProcess) Signal(sig os.Signal) error {
	p.terminated = true
	return nil
}

func (p *fakeProcess) Wait() error {
	p.reaped = true
	return nil
}

type fakeRunner struct {
	names []string
	args  [][]string
	procs []*fakeProcess
}

func (r *fakeRunner) Run(name string, args ...string) error { return nil }

func (r *fakeRunner) Output(name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (r *fakeRunner) Start(name string, args ...string) (platform.Process, error) {
	r.names = append(r.names, name)
	r.args = append(r.args, args)
	p := &fakeProcess{}
	r.procs = append(r.procs, p)
	return p, nil
}

func TestPreviewWrapsInTimeout(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPreview(runner)

	if err := p.Start("/opt/savers/globe", "-s 2.0"); err != nil {
		t.Fatal(err)
	}
	if runner.names[0] != "timeout" {
		t.Fatalf("preview ran %q, want timeout wrapper", runner.names[0])
	}
	want := []string{"10s", "/opt/savers/globe", "-s", "2.0"}
	got := runner.args[0]
	if len(got) != len(want) {
		t.Fatalf("preview args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("preview args = %v, want %v", got, want)
		}
	}
}

func TestSecondPreviewReplacesFirst(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPreview(runner)

	if err := p.Start("/opt/savers/globe", ""); err != nil {
		t.Fatal(err)
	}
	if err := p.Start("/opt/savers/warp", ""); err != nil {
		t.Fatal(err)
	}
	if !runner.procs[0].terminated || !runner.procs[0].reaped {
		t.Error("first preview not terminated before the second started")
	}
	if runner.procs[1].terminated {
		t.Error("second preview should still be running")
	}

	p.Stop()
	if !runner.procs[1].terminated || !runner.procs[1].reaped {
		t.Error("Stop did not reap the running preview")
	}
}

func TestStopWithoutStartIsANoOp(t *testing.T) {
	p := NewPreview(&fakeRunner{})
	p.Stop()
}
