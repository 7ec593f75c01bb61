package models

// Mode names the source of the base configuration.
type Mode string

const (
	ModePath     Mode = "PATH"
	ModeEnv      Mode = "ENV"
	ModeDisabled Mode = "DISABLED"
)

func (m Mode) String() string {
	return string(m)
}
