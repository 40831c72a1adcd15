// Package launch runs a confirmed item's command line. Execution is
// fire-and-forget: the launched process is detached from the launcher and
// failures are only logged.
package launch

import (
	"os/exec"
	"strings"
	"syscall"

	"launchbox/internal/logging"
)

// Runner executes commands through the shell so cached command lines with
// arguments keep working verbatim.
type Runner struct{}

// NewRunner returns the default executor collaborator.
func NewRunner() *Runner {
	return &Runner{}
}

// Exec starts command in its own session so it outlives the launcher. No
// return value: the session treats execution as fire-and-forget.
func (r *Runner) Exec(command string) {
	command = strings.TrimSpace(command)
	if command == "" {
		return
	}
	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		logging.Error(err)
		return
	}
	// Reap the child when it exits; we never consume the result.
	go func() { _ = cmd.Wait() }()
}
