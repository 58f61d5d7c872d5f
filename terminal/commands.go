package terminal

import (
	"errors"
	"strings"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/security"
)

const missionComplete = "[MISSION COMPLETE] You've recovered the secret data!"

var helpLines = []string{
	"Available Commands:",
	"  ls              - List files and directories",
	"  cd <dir>        - Change directory (use '..' to go up)",
	"  cat <file>      - Read file content",
	"  hack <dir>      - Bypass directory security",
	"  decrypt <file>  - Decrypt an encrypted file",
	"  clear           - Clear terminal screen",
	"  help            - Show this help message",
	"  exit            - Terminate connection",
}

func (in *Interpreter) list(string) bool {
	for _, n := range in.session.Cwd().Children() {
		prefix := "[FILE]"
		if n.IsDir() {
			prefix = "[DIR] "
		}
		suffix := ""
		if n.Sealed() {
			suffix = " (LOCKED)"
		}
		in.console.Println(prefix + " " + n.Name() + suffix)
	}
	return true
}

func (in *Interpreter) changeDir(name string) bool {
	if name == ".." {
		in.session.MoveUp()
		return true
	}
	n, err := in.session.Resolve(name)
	if err == nil && !n.IsDir() {
		err = netnode.ErrWrongType
	}
	if err == nil && !security.Accessible(n) {
		err = netnode.ErrAccessDenied
	}
	if err == nil {
		err = in.session.MoveInto(n)
	}

	switch {
	case err == nil:
		return true
	case errors.Is(err, netnode.ErrAccessDenied):
		in.console.Println("Access Denied: Directory is locked. Use 'hack <name>' to bypass.")
	default:
		in.console.Println("Directory not found: " + name)
	}
	in.report("cd", err)
	return true
}

func (in *Interpreter) readFile(name string) bool {
	n, err := in.session.Resolve(name)
	var content string
	if err == nil {
		content, err = n.ReadContent()
	}

	switch {
	case err == nil:
		in.console.Println("--- " + name + " ---")
		for _, line := range strings.Split(content, "\n") {
			in.console.Println(line)
		}
		in.console.Println("--- EOF ---")
		if in.opts.VictoryMarker != "" && strings.Contains(content, in.opts.VictoryMarker) {
			in.logger.Info().Str("path", n.Path()).Msg("Victory marker read")
			in.console.Println("")
			in.console.Println(missionComplete)
		}
		return true
	case errors.Is(err, netnode.ErrAccessDenied):
		in.console.Println("Error: File is encrypted. Use 'decrypt <name>'.")
	case errors.Is(err, netnode.ErrWrongType):
		in.console.Println("Not a file: " + name)
	default:
		in.console.Println("File not found: " + name)
	}
	in.report("cat", err)
	return true
}

func (in *Interpreter) hack(name string) bool {
	n, _ := in.session.Resolve(name)
	if n == nil || security.StateOf(n) != security.Locked {
		in.console.Println("Target is not a locked directory.")
		return true
	}
	in.console.Println("Initializing bypass sequence for " + name + "...")
	if err := in.gate.Hack(n, in.console); err != nil {
		in.report("hack", err)
		in.console.Println("FAILURE: Security lockout detected.")
		return true
	}
	in.console.Println("SUCCESS: Security bypassed.")
	return true
}

func (in *Interpreter) decrypt(name string) bool {
	n, _ := in.session.Resolve(name)
	if n == nil || security.StateOf(n) != security.Encrypted {
		in.console.Println("Target is not an encrypted file.")
		return true
	}
	in.console.Println("Initializing decryption for " + name + "...")
	if err := in.gate.Decrypt(n, in.console); err != nil {
		in.report("decrypt", err)
		in.console.Println("FAILURE: Decryption key rejected.")
		return true
	}
	in.console.Println("SUCCESS: File decrypted.")
	return true
}

func (in *Interpreter) help(string) bool {
	for _, line := range helpLines {
		in.console.Println(line)
	}
	return true
}

func (in *Interpreter) clear(string) bool {
	in.console.Clear()
	return true
}

func (in *Interpreter) exit(string) bool {
	in.logger.Debug().Msg("Exit requested")
	in.console.Println(goodbye)
	return false
}
