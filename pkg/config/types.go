package config

// Toolchain describes a toolchain mounted into the container. Project config
// entries must never carry a HostPath.
type Toolchain struct {
	ContainerPath string   `koanf:"container_path" json:"container_path"`
	HostPath      string   `koanf:"host_path" json:"host_path,omitempty"`
	PathPrepend   []string `koanf:"path_prepend" json:"path_prepend,omitempty"`
	ReadOnly      *bool    `koanf:"read_only" json:"read_only,omitempty"`
}

// IsReadOnly reports the effective read-only flag (default false).
func (t Toolchain) IsReadOnly() bool {
	return t.ReadOnly != nil && *t.ReadOnly
}

// VcpkgConfig is the package manager block shared by project and build config.
// Host and container locations are only valid in build config.
type VcpkgConfig struct {
	ContainerBinaryCache string   `koanf:"container_binary_cache" json:"container_binary_cache,omitempty"`
	ContainerRoot        string   `koanf:"container_root" json:"container_root,omitempty"`
	Enabled              *bool    `koanf:"enabled" json:"enabled,omitempty"`
	FixupZ3DLL           *bool    `koanf:"fixup_z3_dll" json:"fixup_z3_dll,omitempty"`
	HostBinaryCache      string   `koanf:"host_binary_cache" json:"host_binary_cache,omitempty"`
	HostRoot             string   `koanf:"host_root" json:"host_root,omitempty"`
	OverlayTriplets      []string `koanf:"overlay_triplets" json:"overlay_triplets,omitempty"`
	Packages             []string `koanf:"packages" json:"packages,omitempty"`
	Triplet              string   `koanf:"triplet" json:"triplet,omitempty"`
}

// WinexeWrapper describes a generated script that runs a Windows executable
// under Wine. Name must be a bare file name.
type WinexeWrapper struct {
	Exe     string `koanf:"exe" json:"exe"`
	MsvcEnv *bool  `koanf:"msvc_env" json:"msvc_env,omitempty"`
	Name    string `koanf:"name" json:"name"`
}

// UsesMsvcEnv reports whether the wrapper sources msvcenv.sh.
func (w WinexeWrapper) UsesMsvcEnv() bool {
	return w.MsvcEnv != nil && *w.MsvcEnv
}

// Mount is an extra bind mount recorded at init time.
type Mount struct {
	ContainerPath string `json:"container_path"`
	HostPath      string `json:"host_path"`
	ReadOnly      bool   `json:"read_only"`
}

// Mode returns the docker volume mode suffix.
func (m Mount) Mode() string {
	if m.ReadOnly {
		return "ro"
	}
	return "rw"
}

// ProjectConfig is the flat schema of wincross.toml after legacy lifting.
// Profiles hold partial overlays of the same shape.
type ProjectConfig struct {
	BinAliases      []string                 `koanf:"bin_aliases"`
	BuildDir        string                   `koanf:"build_dir"`
	BuildType       string                   `koanf:"build_type"`
	CMakeDefaults   []string                 `koanf:"cmake_defaults"`
	DefaultProfile  string                   `koanf:"default_profile"`
	EmulatorEnv     map[string]string        `koanf:"emulator_env"`
	Env             map[string]string        `koanf:"env"`
	Generator       string                   `koanf:"generator"`
	Image           string                   `koanf:"image"`
	PathPrepend     []string                 `koanf:"path_prepend"`
	Profiles        map[string]ProjectConfig `koanf:"profiles"`
	Toolchains      map[string]Toolchain     `koanf:"toolchains"`
	Vcpkg           VcpkgConfig              `koanf:"vcpkg"`
	WinepathPrepend []string                 `koanf:"winepath_prepend"`
	WinexeWrappers  []WinexeWrapper          `koanf:"winexe_wrappers"`
}

// BuildConfig is the machine-generated snapshot persisted as JSON. Fields are
// declared in key order so the written document is sorted.
type BuildConfig struct {
	BinAliases      []string             `json:"bin_aliases,omitempty"`
	BuildDir        string               `json:"build_dir,omitempty"`
	BuildType       string               `json:"build_type,omitempty"`
	CMakeDefaults   []string             `json:"cmake_defaults"`
	EmulatorEnv     map[string]string    `json:"emulator_env,omitempty"`
	Env             map[string]string    `json:"env"`
	Generator       string               `json:"generator,omitempty"`
	Image           string               `json:"image,omitempty"`
	Mounts          []Mount              `json:"mounts"`
	PathPrepend     []string             `json:"path_prepend"`
	Profile         string               `json:"profile,omitempty"`
	ProjectRoot     string               `json:"project_root,omitempty"`
	StateDir        string               `json:"state_dir,omitempty"`
	Toolchains      map[string]Toolchain `json:"toolchains"`
	Vcpkg           VcpkgConfig          `json:"vcpkg"`
	Version         int                  `json:"version,omitempty"`
	WinepathPrepend []string             `json:"winepath_prepend,omitempty"`
	WinexeWrappers  []WinexeWrapper      `json:"winexe_wrappers,omitempty"`
}

// EffectiveVcpkg is the resolved package manager block.
type EffectiveVcpkg struct {
	ContainerBinaryCache string   `json:"container_binary_cache,omitempty"`
	ContainerRoot        string   `json:"container_root,omitempty"`
	Enabled              bool     `json:"enabled"`
	FixupZ3DLL           bool     `json:"fixup_z3_dll"`
	HostBinaryCache      string   `json:"host_binary_cache,omitempty"`
	HostRoot             string   `json:"host_root,omitempty"`
	OverlayTriplets      []string `json:"overlay_triplets"`
	Packages             []string `json:"packages"`
	Triplet              string   `json:"triplet"`
}

// Placeholders are the container-side values templates may reference.
type Placeholders struct {
	BuildDir    string `json:"build_dir"`
	ConfigDir   string `json:"config_dir"`
	ProjectRoot string `json:"project_root"`
	StateDir    string `json:"state_dir"`
}

// Map returns the placeholder whitelist used by ExpandTemplate.
func (p Placeholders) Map() map[string]string {
	return map[string]string{
		"project_root": p.ProjectRoot,
		"state_dir":    p.StateDir,
		"build_dir":    p.BuildDir,
		"config_dir":   p.ConfigDir,
	}
}

// Effective is the resolved configuration. It is fully self-contained and
// must be treated as read-only by consumers.
type Effective struct {
	BinAliases      []string             `json:"bin_aliases"`
	BuildDir        string               `json:"build_dir"`
	BuildType       string               `json:"build_type"`
	CMakeDefaults   []string             `json:"cmake_defaults"`
	ConfigDir       string               `json:"config_dir"`
	ContainerRoot   string               `json:"container_root"`
	EmulatorEnv     map[string]string    `json:"emulator_env"`
	Env             map[string]string    `json:"env"`
	Generator       string               `json:"generator"`
	Image           string               `json:"image"`
	Mounts          []Mount              `json:"mounts"`
	PathPrepend     []string             `json:"path_prepend"`
	Placeholders    Placeholders         `json:"placeholders"`
	Profile         string               `json:"profile,omitempty"`
	ProjectRoot     string               `json:"project_root"`
	StateDir        string               `json:"state_dir"`
	Toolchains      map[string]Toolchain `json:"toolchains"`
	Vcpkg           EffectiveVcpkg       `json:"vcpkg"`
	Version         int                  `json:"version"`
	WinepathPrepend []string             `json:"winepath_prepend"`
	WinexeWrappers  []WinexeWrapper      `json:"winexe_wrappers"`

	// Defaults the configuration was resolved with.
	Defaults Defaults `json:"-"`
}

// ContainerStateDir is the state directory as seen inside the container.
func (e *Effective) ContainerStateDir() string {
	return e.Placeholders.StateDir
}

// ContainerBuildDir is the build directory as seen inside the container.
func (e *Effective) ContainerBuildDir() string {
	return e.Placeholders.BuildDir
}
