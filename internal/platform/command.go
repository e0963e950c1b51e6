package platform

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"omarchy.dev/screensaver/internal/saver"
)

// Runner executes helper processes. The exec implementation is used in
// production; tests inject a recording fake.
type Runner interface {
	// Run executes a command to completion.
	Run(name string, args ...string) error

	// Output executes a command and returns its standard output.
	Output(name string, args ...string) ([]byte, error)

	// Start launches a command without waiting.
	Start(name string, args ...string) (Process, error)
}

// Process is a started child that can be signalled and reaped.
type Process interface {
	Pid() int
	Signal(sig os.Signal) error
	Wait() error
}

// ExecRunner runs commands with os/exec. Env entries, when set, are appended
// to the inherited environment of every started command.
type ExecRunner struct {
	Env []string
}

// Run executes a command to completion.
func (r *ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), r.Env...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %v: %w", name, err, saver.ErrSubprocess)
	}
	return nil
}

// Output executes a command and returns its standard output.
func (r *ExecRunner) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), r.Env...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, saver.ErrSubprocess)
	}
	return out, nil
}

// Start launches a command without waiting.
func (r *ExecRunner) Start(name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), r.Env...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, saver.ErrSubprocess)
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Pid() int { return p.cmd.Process.Pid }

func (p *execProcess) Signal(sig os.Signal) error { return p.cmd.Process.Signal(sig) }

func (p *execProcess) Wait() error { return p.cmd.Wait() }

// Terminate sends SIGTERM to a child, waits up to the timeout, then
// escalates to SIGKILL and reaps.
func Terminate(p Process, timeout time.Duration) {
	if p == nil {
		return
	}
	_ = p.Signal(syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		_ = p.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		_ = p.Signal(syscall.SIGKILL)
		<-done
	}
}
