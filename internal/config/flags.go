package config

func (f Flags) toSources() *Sources {
	return &Sources{
		Mode:                  f.Mode,
		Path:                  f.Path,
		LogLevel:              f.LogLevel,
		NetworkDefaultsPolicy: f.NetworkDefaultsPolicy,
	}
}
