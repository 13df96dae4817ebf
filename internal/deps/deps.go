// Package deps verifies the external tools flacup drives before a run
// starts, so a missing encoder fails fast instead of mid-batch.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Status reports the availability of one external tool.
type Status struct {
	Name      string
	Command   string
	Available bool
	Detail    string
}

// CheckEncoder resolves the configured flac executable. The command may be
// a bare name looked up on PATH or an explicit path.
func CheckEncoder(command string) Status {
	command = strings.TrimSpace(command)
	status := Status{Name: "flac", Command: command}
	if command == "" {
		status.Detail = "encoder binary not configured"
		return status
	}
	resolved, err := exec.LookPath(command)
	if err != nil {
		status.Detail = fmt.Sprintf("encoder binary %q not found", command)
		return status
	}
	status.Available = true
	status.Detail = resolved
	return status
}
