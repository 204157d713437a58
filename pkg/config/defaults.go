package config

import "github.com/wincross/wincross/pkg/paths"

// Defaults carries the built-in values the resolution engine falls back to.
type Defaults struct {
	Image         string
	Generator     string
	BuildType     string
	ContainerRoot string
	StateDirName  string
	Triplet       string
	// MsvcRoot is the MSVC installation inside the image
	MsvcRoot string
	// BasePath terminates the container PATH
	BasePath string
	// ConfigVersion is written by init
	ConfigVersion int
}

// StandardDefaults returns the defaults wincross ships with.
func StandardDefaults() Defaults {
	return Defaults{
		Image:         "wincross-msvc:latest",
		Generator:     "Ninja",
		BuildType:     "Release",
		ContainerRoot: paths.DefaultContainerRoot,
		StateDirName:  paths.StateDirName,
		Triplet:       "x64-windows",
		MsvcRoot:      "/opt/msvc",
		BasePath:      "/usr/local/bin:/usr/bin:/bin",
		ConfigVersion: 2,
	}
}

// MsvcBinDir is the x64 tool directory holding msvcenv.sh and wine-msvc.sh.
func (d Defaults) MsvcBinDir() string {
	return d.MsvcRoot + "/bin/x64"
}
