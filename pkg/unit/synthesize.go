package unit

import (
	"fmt"
	"strings"
)

// Synthesize renders the complete unit definition for a validated Spec.
// It is pure and deterministic: equal specs produce byte-identical
// output. Callers must run Spec.Validate first; Synthesize renders
// whatever it is given.
func Synthesize(s Spec) string {
	var b strings.Builder

	b.WriteString("# Generated with servicer\n")
	b.WriteString("[Unit]\n")
	b.WriteString("After=network.target\n")
	b.WriteString("\n")

	b.WriteString("[Service]\n")
	b.WriteString("Type=simple\n")
	fmt.Fprintf(&b, "User=%s\n", s.User)
	b.WriteString("\n")
	fmt.Fprintf(&b, "WorkingDirectory=%s\n", s.WorkingDir)
	fmt.Fprintf(&b, "ExecStart=%s\n", strings.Join(s.Command, " "))
	if s.AutoRestart {
		b.WriteString("Restart=always\n")
	}
	for _, kv := range s.EnvVars {
		fmt.Fprintf(&b, "Environment=%s\n", kv)
	}
	b.WriteString("\n")

	b.WriteString("[Install]\n")
	b.WriteString("WantedBy=multi-user.target\n")

	return b.String()
}
