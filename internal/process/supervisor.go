package process

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors.
var (
	// ErrProcessNotStarted is returned for operations on a process that
	// is not running.
	ErrProcessNotStarted = errors.New("process not started")

	// ErrProcessAlreadyStarted is returned when starting a process twice.
	ErrProcessAlreadyStarted = errors.New("process already started")

	// ErrSupervisorShutdown is returned when starting a child after the
	// supervisor began shutting down.
	ErrSupervisorShutdown = errors.New("supervisor is shutting down")
)

// Supervisor owns every media child of one playback session.
//
// A session typically runs a decoder, an audio extractor, and an audio
// player at once. The supervisor tracks them all so a single Shutdown call
// on any exit path, normal, faulted, or interrupted, tears the whole set
// down. Safe for concurrent use.
type Supervisor struct {
	mu        sync.RWMutex
	processes map[string]*Process

	closed atomic.Bool
}

// NewSupervisor creates an empty supervisor.
func NewSupervisor() *Supervisor {
	return &Supervisor{processes: make(map[string]*Process)}
}

// Start launches cmd as a managed child under a generated ID.
//
// Standard streams that are not already redirected are piped and exposed
// on the returned Process. Returns ErrSupervisorShutdown once Shutdown has
// begun.
func (s *Supervisor) Start(name string, cmd *exec.Cmd) (*Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return nil, ErrSupervisorShutdown
	}

	proc := newProcess(uuid.New().String(), name, cmd)

	// Pipes are raw fds rather than the exec pipe helpers: waitLoop calls
	// Wait as soon as the child starts, and the helpers would close the
	// parent ends under a still-active reader, losing buffered stream
	// tails when a child exits quickly.
	var childEnds, parentEnds []*os.File
	if cmd.Stdin == nil {
		r, w, err := os.Pipe()
		if err != nil {
			return nil, fmt.Errorf("create stdin pipe: %w", err)
		}
		cmd.Stdin = r
		proc.Stdin = w
		childEnds = append(childEnds, r)
		parentEnds = append(parentEnds, w)
	}
	if cmd.Stdout == nil {
		r, w, err := os.Pipe()
		if err != nil {
			closeFiles(childEnds, parentEnds)
			return nil, fmt.Errorf("create stdout pipe: %w", err)
		}
		cmd.Stdout = w
		proc.Stdout = r
		childEnds = append(childEnds, w)
		parentEnds = append(parentEnds, r)
	}
	if cmd.Stderr == nil {
		r, w, err := os.Pipe()
		if err != nil {
			closeFiles(childEnds, parentEnds)
			return nil, fmt.Errorf("create stderr pipe: %w", err)
		}
		cmd.Stderr = w
		proc.Stderr = r
		childEnds = append(childEnds, w)
		parentEnds = append(parentEnds, r)
	}

	if err := proc.start(); err != nil {
		closeFiles(childEnds, parentEnds)
		return nil, err
	}
	// The child owns its ends now; keeping them open here would hold the
	// pipes past the child's exit.
	closeFiles(childEnds, nil)

	s.processes[proc.ID] = proc
	go s.monitor(proc)

	return proc, nil
}

// closeFiles closes both pipe end sets, ignoring close errors.
func closeFiles(a, b []*os.File) {
	for _, f := range a {
		_ = f.Close()
	}
	for _, f := range b {
		_ = f.Close()
	}
}

// monitor removes a process from tracking once it exits.
func (s *Supervisor) monitor(proc *Process) {
	<-proc.Done()
	s.mu.Lock()
	delete(s.processes, proc.ID)
	s.mu.Unlock()
}

// Count returns the number of children still tracked.
func (s *Supervisor) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.processes)
}

// running returns a snapshot of the tracked children.
func (s *Supervisor) running() []*Process {
	s.mu.RLock()
	defer s.mu.RUnlock()
	procs := make([]*Process, 0, len(s.processes))
	for _, p := range s.processes {
		procs = append(procs, p)
	}
	return procs
}

// Shutdown terminates all children: SIGTERM first, then SIGKILL for any
// still alive after the timeout. It blocks until every child has exited
// and been removed from tracking. Safe to call more than once.
func (s *Supervisor) Shutdown(timeout time.Duration) {
	if s.closed.Swap(true) {
		return
	}

	procs := s.running()
	if len(procs) == 0 {
		return
	}

	for _, p := range procs {
		if p.IsRunning() {
			_ = p.Terminate()
		}
	}

	done := make(chan struct{})
	go func() {
		for _, p := range procs {
			<-p.Done()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		for _, p := range procs {
			if p.IsRunning() {
				_ = p.Kill()
			}
		}
		<-done
	}

	// Wait for monitor goroutines to drop the map entries.
	for s.Count() > 0 {
		time.Sleep(time.Millisecond)
	}
}

// IsShuttingDown returns true once Shutdown has begun.
func (s *Supervisor) IsShuttingDown() bool {
	return s.closed.Load()
}
