package config

// MergeToolchains overlays override onto base per entry. Attributes set in an
// override entry replace the base attribute; names only present in override
// are added whole. Neither input is modified.
func MergeToolchains(base, override map[string]Toolchain) map[string]Toolchain {
	merged := make(map[string]Toolchain, len(base)+len(override))
	for name, tc := range base {
		merged[name] = tc.clone()
	}
	for name, tc := range override {
		existing, ok := merged[name]
		if !ok {
			merged[name] = tc.clone()
			continue
		}
		if tc.HostPath != "" {
			existing.HostPath = tc.HostPath
		}
		if tc.ContainerPath != "" {
			existing.ContainerPath = tc.ContainerPath
		}
		if tc.ReadOnly != nil {
			existing.ReadOnly = boolPtr(*tc.ReadOnly)
		}
		if tc.PathPrepend != nil {
			existing.PathPrepend = append([]string{}, tc.PathPrepend...)
		}
		merged[name] = existing
	}
	return merged
}

func (t Toolchain) clone() Toolchain {
	out := t
	if t.ReadOnly != nil {
		out.ReadOnly = boolPtr(*t.ReadOnly)
	}
	if t.PathPrepend != nil {
		out.PathPrepend = append([]string{}, t.PathPrepend...)
	}
	return out
}

func boolPtr(b bool) *bool { return &b }

// Bool returns a pointer to b, for optional config flags.
func Bool(b bool) *bool { return boolPtr(b) }
