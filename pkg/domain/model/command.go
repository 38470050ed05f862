package model

import "strings"

// Command represents an external command to be executed. It is a plain value
// passed between layers so that use cases can compose invocations without
// touching os/exec directly.
type Command struct {
	Program string // Executable name or path
	Args    []string
}

// NewCommand creates a Command from a program name and its arguments
func NewCommand(program string, args ...string) Command {
	return Command{Program: program, Args: args}
}

// Tokens returns the full token list, program first
func (c Command) Tokens() []string {
	return append([]string{c.Program}, c.Args...)
}

// String renders the command line as it would be typed in a shell
func (c Command) String() string {
	return strings.Join(c.Tokens(), " ")
}
