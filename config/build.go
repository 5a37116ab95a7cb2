package config

import "fmt"

var DEV bool

func SetDevMode(dev bool) { DEV = dev }

type BuildType int

const (
	RELEASE BuildType = iota
	DEBUG
)

func (bt BuildType) String() string {
	switch bt {
	case RELEASE:
		return "release"
	case DEBUG:
		return "debug"
	}
	return "unknown"
}

func (bt *BuildType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "release":
		*bt = RELEASE
	case "debug":
		*bt = DEBUG
	default:
		return fmt.Errorf("invalid build type %q, expected \"debug\" or \"release\"", text)
	}
	return nil
}

func (bt BuildType) MarshalText() ([]byte, error) { return []byte(bt.String()), nil }

// Target tells whether a program is built as an executable or a library.
type Target int

const (
	EXECUTABLE Target = iota
	LIBRARY
)

func (target Target) String() string {
	switch target {
	case EXECUTABLE:
		return "executable"
	case LIBRARY:
		return "library"
	}
	return "unknown"
}

func (target Target) IsLibrary() bool { return target == LIBRARY }

func (target *Target) UnmarshalText(text []byte) error {
	switch string(text) {
	case "executable", "bin":
		*target = EXECUTABLE
	case "library", "lib":
		*target = LIBRARY
	default:
		return fmt.Errorf("invalid target %q, expected \"executable\" or \"library\"", text)
	}
	return nil
}

func (target Target) MarshalText() ([]byte, error) { return []byte(target.String()), nil }
