package driver

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/peterh/liner"
)

const (
	historyFile = ".quill_history"
	prompt      = "quill > "
)

// Interactive runs the read-evaluate-print loop. A reader goroutine owns
// the line editor and produces submitted lines over a channel; this loop
// is the single consumer, running one full pipeline pass per line. A quit
// flag set by the interrupt handler (or by typing "exit") is polled
// between submissions - an in-flight evaluation is never interrupted,
// which is fine because the grammar has no loops or calls and every
// evaluation terminates quickly.
func (d *Driver) Interactive() {
	fmt.Fprintln(d.out, "quill - Ctrl+D or \"exit\" to quit")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var quit atomic.Bool

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		for range sigc {
			quit.Store(true)
		}
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			line, err := ln.Prompt(prompt)
			if err != nil {
				// Ctrl+C aborts the pending line, Ctrl+D ends input;
				// both stop the loop
				quit.Store(true)
				return
			}
			lines <- line
		}
	}()

	poll := time.NewTicker(50 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case line, ok := <-lines:
			if ok {
				d.submit(ln, line, &quit)
			}
		case <-poll.C:
		}

		if quit.Load() {
			fmt.Fprintln(d.out, "Exiting...")
			return
		}
	}
}

func (d *Driver) submit(ln *liner.State, line string, quit *atomic.Bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	if trimmed == "exit" {
		quit.Store(true)
		return
	}

	ln.AppendHistory(line)
	d.Run(line)
}
