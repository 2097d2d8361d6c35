package morpion

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"time"
)

const defaultScript = "./morpion/morpion.py"

// ScriptCommand returns the command line used to launch the game engine.
// MORPION_SCRIPT can override the default path.
func ScriptCommand() []string {
	script := os.Getenv("MORPION_SCRIPT")
	if script == "" {
		script = defaultScript
	}
	return []string{script}
}

// InitMessage is the first line written to a freshly started engine
type InitMessage struct {
	Init struct {
		Players int `json:"players"`
	} `json:"init"`
}

// Runner wraps one running game engine process. Input goes in through
// WriteLine as JSON lines, output lines come back on Lines().
type Runner struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	lines  chan string
	closed chan struct{}

	mu      sync.Mutex
	stopped bool
}

// Start launches the engine process and begins streaming its stdout.
func Start(command []string) (*Runner, error) {
	if len(command) == 0 {
		return nil, errors.New("empty engine command")
	}
	cmd := exec.Command(command[0], command[1:]...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("could not open engine stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("could not open engine stdout: %w", err)
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("could not start engine %s: %w", command[0], err)
	}

	r := &Runner{
		cmd:    cmd,
		stdin:  stdin,
		lines:  make(chan string, 16),
		closed: make(chan struct{}),
	}

	// Single reader goroutine, the channel closes when the engine exits
	go func() {
		defer close(r.lines)
		defer close(r.closed)
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			r.lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			log.Printf("Engine stdout closed with error. Details => %v", err)
		}
		if err := cmd.Wait(); err != nil {
			log.Printf("Engine process exited. Details => %v", err)
		}
	}()

	return r, nil
}

// StartWithPlayers launches the engine and sends it the init line.
func StartWithPlayers(command []string, players int) (*Runner, error) {
	r, err := Start(command)
	if err != nil {
		return nil, err
	}
	var init InitMessage
	init.Init.Players = players
	if err := r.WriteJSON(init); err != nil {
		r.Stop()
		return nil, err
	}
	return r, nil
}

// Lines returns the channel of raw stdout lines from the engine.
func (r *Runner) Lines() <-chan string {
	return r.lines
}

// WriteLine sends one line to the engine stdin.
func (r *Runner) WriteLine(line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return errors.New("engine is not running")
	}
	_, err := io.WriteString(r.stdin, line+"\n")
	if err != nil {
		return fmt.Errorf("could not write to engine: %w", err)
	}
	return nil
}

// WriteJSON marshals the payload and sends it as one line.
func (r *Runner) WriteJSON(payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not encode engine payload: %w", err)
	}
	return r.WriteLine(string(data))
}

// Stop closes stdin and kills the process if it does not exit on its own.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	if err := r.stdin.Close(); err != nil {
		log.Printf("Could not close engine stdin. Details => %v", err)
	}

	select {
	case <-r.closed:
	case <-time.After(2 * time.Second):
		if r.cmd.Process != nil {
			_ = r.cmd.Process.Kill()
		}
	}
}

// Done is closed once the engine process has fully exited.
func (r *Runner) Done() <-chan struct{} {
	return r.closed
}
