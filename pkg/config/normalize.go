package config

// legacyLifts maps a legacy nested table to the flat keys it may provide.
// Each entry is table -> {nested key: flat key}.
var legacyLifts = []struct {
	table string
	keys  [][2]string
}{
	{"cmake", [][2]string{
		{"defaults", "cmake_defaults"},
		{"generator", "generator"},
		{"build_type", "build_type"},
		{"build_dir", "build_dir"},
	}},
	{"wincross", [][2]string{
		{"winexe_wrappers", "winexe_wrappers"},
		{"winepath_prepend", "winepath_prepend"},
		{"bin_aliases", "bin_aliases"},
		{"emulator_env", "emulator_env"},
	}},
	{"path", [][2]string{
		{"prepend", "path_prepend"},
	}},
}

// NormalizeProjectConfig lifts legacy nested shapes (cmake.*, wincross.*,
// path.prepend) into flat top-level keys. A flat key that is already present
// is never overwritten. Profiles are normalized the same way. The input map
// is not modified.
func NormalizeProjectConfig(raw map[string]interface{}) map[string]interface{} {
	data := normalizeTable(raw)
	profiles, ok := data["profiles"].(map[string]interface{})
	if !ok {
		return data
	}
	normalized := make(map[string]interface{}, len(profiles))
	for name, overlay := range profiles {
		if table, ok := overlay.(map[string]interface{}); ok {
			normalized[name] = normalizeTable(table)
			continue
		}
		normalized[name] = overlay
	}
	data["profiles"] = normalized
	return data
}

func normalizeTable(raw map[string]interface{}) map[string]interface{} {
	data := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		data[k] = v
	}
	for _, lift := range legacyLifts {
		table, ok := data[lift.table].(map[string]interface{})
		if !ok {
			continue
		}
		for _, pair := range lift.keys {
			value, found := table[pair[0]]
			if !found {
				continue
			}
			if _, exists := data[pair[1]]; exists {
				continue
			}
			data[pair[1]] = value
		}
		// legacy tables are consumed; cmake/wincross/path are not flat keys
		delete(data, lift.table)
	}
	return data
}
