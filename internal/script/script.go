package script

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedDialect means the configured dialect isn't one of the
// supported shells. There is no fallback: a typo in settings should fail
// loudly, not silently generate bash.
var ErrUnsupportedDialect = errors.New("unsupported script dialect")

// Dialect selects the shell a generated script targets.
type Dialect string

const (
	Bash       Dialect = "bash"
	Zsh        Dialect = "zsh"
	PowerShell Dialect = "powershell"
	Cmd        Dialect = "cmd"
)

// Dialects lists all supported dialects, for prompts and validation.
var Dialects = []Dialect{Bash, Zsh, PowerShell, Cmd}

// Parse validates a dialect string from settings.
func Parse(s string) (Dialect, error) {
	d := Dialect(s)
	switch d {
	case Bash, Zsh, PowerShell, Cmd:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
}

// Per-dialect generation policy.
//
//	dialect     header          ext   join
//	bash        #!/bin/bash     .sh   blank line
//	zsh         #!/bin/zsh      .sh   blank line
//	powershell  comment header  .ps1  newline
//	cmd         @echo off       .bat  newline
type policy struct {
	header string
	ext    string
	join   string
}

var policies = map[Dialect]policy{
	Bash:       {header: "#!/bin/bash", ext: ".sh", join: "\n\n"},
	Zsh:        {header: "#!/bin/zsh", ext: ".sh", join: "\n\n"},
	PowerShell: {header: "# flow script", ext: ".ps1", join: "\n"},
	Cmd:        {header: "@echo off", ext: ".bat", join: "\n"},
}

// Generate turns a comma-separated command list into script text for the
// given dialect. Returns the script body and the file extension.
//
// The command list uses a bare ',' delimiter with no escaping, so a command
// containing a literal comma cannot be represented. That limitation is part
// of the contract; don't add escaping here.
func Generate(d Dialect, commandList string) (text, ext string, err error) {
	p, ok := policies[d]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, d)
	}

	commands := splitCommands(commandList)

	var b strings.Builder
	b.WriteString(p.header)
	b.WriteString("\n")
	if len(commands) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(commands, p.join))
		b.WriteString("\n")
	}

	return b.String(), p.ext, nil
}

// Interpreter returns the argument vector that executes scriptPath under
// the dialect's shell. The interpreter and the script are separate argv
// entries, never interpolated into a shell command line.
func Interpreter(d Dialect, scriptPath string) ([]string, error) {
	switch d {
	case Bash:
		return []string{"/bin/bash", scriptPath}, nil
	case Zsh:
		return []string{"/bin/zsh", scriptPath}, nil
	case PowerShell:
		return []string{"powershell", "-ExecutionPolicy", "Bypass", "-File", scriptPath}, nil
	case Cmd:
		return []string{"cmd", "/C", scriptPath}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, d)
}

func splitCommands(list string) []string {
	var commands []string
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			commands = append(commands, c)
		}
	}
	return commands
}
