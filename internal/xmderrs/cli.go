package xmderrs

import "fmt"

// MissingArgumentError indicates a required positional argument was not
// provided to a subcommand.
type MissingArgumentError struct {
	Command  string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: missing required argument %s", e.Command, e.Argument)
}

// IncompatibleFlagsError indicates two flags cannot be used together.
type IncompatibleFlagsError struct {
	Flag1 string
	Flag2 string
}

func (e *IncompatibleFlagsError) Error() string {
	return fmt.Sprintf("cannot use %s with %s", e.Flag1, e.Flag2)
}

// ConfigParseError indicates the optional YAML config file failed to
// parse.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}
