package wrappers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
)

const shebang = "#!/usr/bin/env bash\n"

// dllOverrides forces the MSVC C++ runtime DLLs to resolve to native copies.
const dllOverrides = `EXTRA_OVERRIDES="msvcp140=n;msvcp140_1=n;msvcp140_2=n;msvcp140_atomic_wait=n"
if [ -n "${WINEDLLOVERRIDES:-}" ]; then
  export WINEDLLOVERRIDES="${EXTRA_OVERRIDES};${WINEDLLOVERRIDES}"
else
  export WINEDLLOVERRIDES="${EXTRA_OVERRIDES}"
fi
`

const winePath = `WINEPATH_PREFIX="${EXE_WIN}"
if [ -n "${WINCROSS_WINEPATH_PREPEND:-}" ]; then
  WINEPATH_PREFIX="${WINEPATH_PREFIX};${WINCROSS_WINEPATH_PREPEND}"
fi
if [ -n "${WINEPATH:-}" ]; then
  export WINEPATH="${WINEPATH_PREFIX};${WINEPATH}"
else
  export WINEPATH="${WINEPATH_PREFIX}"
fi
`

const exeWin = `EXE_DIR=$(dirname "$EXE")
EXE_WIN="z:${EXE_DIR//\//\\}"
`

// WinepathValue converts container paths to Wine's z: drive notation joined
// by ';'. Empty entries are skipped.
func WinepathValue(entries []string) string {
	converted := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		converted = append(converted, "z:"+strings.ReplaceAll(entry, "/", `\\`))
	}
	return strings.Join(converted, ";")
}

// withWinepath inserts the WINCROSS_WINEPATH_PREPEND assignment after the
// shebang when there is anything to prepend.
func withWinepath(script, winepath string) string {
	if winepath == "" {
		return script
	}
	return strings.Replace(script, shebang,
		shebang+"WINCROSS_WINEPATH_PREPEND="+shellquote.Join(winepath)+"\n", 1)
}

// RenderWinexeWrapper renders the wrapper for a resolved executable path.
func RenderWinexeWrapper(exe string, msvcEnv bool, msvcBinDir string) string {
	var b strings.Builder
	b.WriteString(shebang)
	b.WriteString("set -euo pipefail\n")
	fmt.Fprintf(&b, "EXE=%s\n", shellquote.Join(exe))
	b.WriteString(exeWin)
	if msvcEnv {
		fmt.Fprintf(&b, "source %s/msvcenv.sh\n", msvcBinDir)
	}
	b.WriteString(dllOverrides)
	b.WriteString(winePath)
	b.WriteString(`MAGIC=$(head -c 2 "$EXE" 2>/dev/null || true)` + "\n")
	b.WriteString(`if [ "$MAGIC" = "MZ" ]; then` + "\n")
	fmt.Fprintf(&b, "  exec %s/wine-msvc.sh \"$EXE\" \"$@\"\n", msvcBinDir)
	b.WriteString("fi\n")
	b.WriteString(`exec "$EXE" "$@"` + "\n")
	return b.String()
}

// RenderCrossEmulator renders the emulator script. Environment exports are
// sorted by key.
func RenderCrossEmulator(emulatorEnv map[string]string, msvcBinDir string) string {
	var b strings.Builder
	b.WriteString(shebang)
	b.WriteString("set -euo pipefail\n")
	b.WriteString(`if [ "$#" -lt 1 ]; then` + "\n")
	b.WriteString("  echo 'usage: wincross-emulator <exe> [args...]' >&2\n")
	b.WriteString("  exit 2\n")
	b.WriteString("fi\n")
	b.WriteString(`ORIG_PATH="$PATH"` + "\n")
	fmt.Fprintf(&b, "if [ -f %s/msvcenv.sh ]; then\n", msvcBinDir)
	fmt.Fprintf(&b, "  source %s/msvcenv.sh\n", msvcBinDir)
	b.WriteString(`  PATH="$ORIG_PATH"` + "\n")
	b.WriteString("fi\n")

	keys := make([]string, 0, len(emulatorEnv))
	for k := range emulatorEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "export %s=%s\n", k, shellquote.Join(emulatorEnv[k]))
	}

	b.WriteString(`EXE="$1"` + "\n")
	b.WriteString("shift\n")
	b.WriteString(exeWin)
	b.WriteString(dllOverrides)
	b.WriteString(winePath)
	fmt.Fprintf(&b, "exec %s/wine-msvc.sh \"$EXE\" \"$@\"\n", msvcBinDir)
	return b.String()
}

// RenderBinAlias renders a redirect to <containerState>/bin/<name>.
func RenderBinAlias(containerState, name string) string {
	return shebang +
		"set -euo pipefail\n" +
		fmt.Sprintf("exec \"%s/bin/%s\" \"$@\"\n", containerState, name)
}

// RenderMtWrapper renders the mt.exe shim that ignores /notify_update
// failures under Wine.
func RenderMtWrapper(msvcBinDir string) string {
	return shebang +
		"# Ignore mt.exe /notify_update failures under Wine.\n" +
		fmt.Sprintf("MT=%s/mt\n", msvcBinDir) +
		`if [[ " $* " == *" /notify_update "* ]]; then` + "\n" +
		`  "$MT" "$@" || exit 0` + "\n" +
		"  exit 0\n" +
		"fi\n" +
		`exec "$MT" "$@"` + "\n"
}
