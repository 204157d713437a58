package config

import (
	"strings"

	"github.com/wincross/wincross/pkg/errors"
)

// Source names the configuration layer a value came from.
type Source string

const (
	SourceProject Source = "project config"
	SourceBuild   Source = "build config"
)

func (s Source) invalidCode() errors.ErrorCode {
	if s == SourceBuild {
		return errors.ErrConfigParse
	}
	return errors.ErrProjectConfigInvalid
}

// IsBasename reports whether name is a bare file name with no directory part.
func IsBasename(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// NormalizeWinexeWrappers validates wrapper descriptors and fills defaults.
// Names must be basenames so no wrapper can escape the scripts directory.
func NormalizeWinexeWrappers(raw []WinexeWrapper, source Source) ([]WinexeWrapper, error) {
	wrappers := make([]WinexeWrapper, 0, len(raw))
	for idx, item := range raw {
		if strings.TrimSpace(item.Name) == "" {
			return nil, errors.Newf(source.invalidCode(), "%s winexe_wrappers[%d] missing name", source, idx).
				WithDetail("field", "winexe_wrappers")
		}
		if !IsBasename(item.Name) {
			return nil, errors.Newf(errors.ErrWrapperNameInvalid, "%s winexe_wrappers[%d] name must be a basename: %s", source, idx, item.Name).
				WithDetail("name", item.Name)
		}
		if strings.TrimSpace(item.Exe) == "" {
			return nil, errors.Newf(source.invalidCode(), "%s winexe_wrappers[%d] missing exe", source, idx).
				WithDetail("field", "winexe_wrappers")
		}
		wrappers = append(wrappers, WinexeWrapper{
			Name:    item.Name,
			Exe:     item.Exe,
			MsvcEnv: boolPtr(item.UsesMsvcEnv()),
		})
	}
	return wrappers, nil
}

// MergeWinexeWrappers merges by name: later entries replace earlier ones with
// the same name while keeping first-seen order.
func MergeWinexeWrappers(project, build []WinexeWrapper) []WinexeWrapper {
	byName := make(map[string]WinexeWrapper, len(project)+len(build))
	order := make([]string, 0, len(project)+len(build))
	for _, w := range append(append([]WinexeWrapper{}, project...), build...) {
		if _, seen := byName[w.Name]; !seen {
			order = append(order, w.Name)
		}
		byName[w.Name] = w
	}
	merged := make([]WinexeWrapper, 0, len(order))
	for _, name := range order {
		merged = append(merged, byName[name])
	}
	return merged
}
