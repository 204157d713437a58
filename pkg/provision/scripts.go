// Package provision prepares the container side of a build: the Wine prefix
// runtime DLLs, the vcpkg checkout and the z3 DLL layout fixup.
package provision

import (
	"fmt"
	"strings"

	"github.com/wincross/wincross/pkg/config"
)

// runtimeDLLs are copied from the MSVC host tools into the Wine prefix so
// freshly built executables can run.
var runtimeDLLs = []string{
	"vcruntime140.dll", "vcruntime140_1.dll", "vcruntime140_threads.dll",
	"msvcp140.dll", "msvcp140_1.dll", "msvcp140_2.dll", "msvcp140_atomic_wait.dll",
	"concrt140.dll",
}

// Command wraps a provisioning script in the argv run inside the container.
func Command(script string) []string {
	return []string{"bash", "-lc", script}
}

// WineRuntimeScript returns the script that copies the MSVC runtime DLLs into
// $WINEPREFIX/drive_c/windows/system32.
func WineRuntimeScript(d config.Defaults) string {
	var b strings.Builder
	b.WriteString("set -e\n")
	b.WriteString("if [ -z \"$WINEPREFIX\" ]; then\n")
	b.WriteString("  echo 'WINEPREFIX is not set' >&2\n")
	b.WriteString("  exit 1\n")
	b.WriteString("fi\n")
	fmt.Fprintf(&b, "BIN_DIR=$(find %s/VC/Tools/MSVC -path '*/bin/Hostx64/x64' -type d | sort | tail -n 1)\n", d.MsvcRoot)
	b.WriteString("if [ -z \"$BIN_DIR\" ]; then\n")
	b.WriteString("  echo 'MSVC bin directory not found' >&2\n")
	b.WriteString("  exit 1\n")
	b.WriteString("fi\n")
	b.WriteString("SYS32=\"$WINEPREFIX/drive_c/windows/system32\"\n")
	b.WriteString("mkdir -p \"$SYS32\"\n")
	fmt.Fprintf(&b, "for dll in %s; do\n", strings.Join(runtimeDLLs, " "))
	b.WriteString("  if [ -f \"$BIN_DIR/$dll\" ]; then\n")
	b.WriteString("    cp -f \"$BIN_DIR/$dll\" \"$SYS32/$dll\"\n")
	b.WriteString("  fi\n")
	b.WriteString("done\n")
	return b.String()
}

const vcpkgBootstrap = `set -e
if command -v clang >/dev/null 2>&1; then
  if [ -z "${CC:-}" ]; then
    export CC=clang
  fi
  if [ -z "${CXX:-}" ]; then
    export CXX=clang++
  fi
fi
if [ ! -d "$VCPKG_ROOT/.git" ]; then
  if [ -d "$VCPKG_ROOT" ]; then
    keep_cache=0
    if [ -d "$VCPKG_ROOT/bincache" ]; then
      keep_cache=1
    fi
    non_cache=$(ls -A "$VCPKG_ROOT" | grep -v '^bincache$' || true)
    if [ -n "$non_cache" ]; then
      echo 'vcpkg root exists but is not a git repo' >&2
      exit 1
    fi
    if [ "$keep_cache" -eq 1 ]; then
      mv "$VCPKG_ROOT/bincache" /tmp/wincross-vcpkg-bincache
    fi
    rmdir "$VCPKG_ROOT"
  fi
  git clone https://github.com/microsoft/vcpkg "$VCPKG_ROOT"
  if [ -d /tmp/wincross-vcpkg-bincache ]; then
    mv /tmp/wincross-vcpkg-bincache "$VCPKG_ROOT/bincache"
  fi
fi
if [ ! -x "$VCPKG_ROOT/vcpkg" ]; then
  "$VCPKG_ROOT/bootstrap-vcpkg.sh"
fi
if [ -n "$VCPKG_DEFAULT_BINARY_CACHE" ]; then
  mkdir -p "$VCPKG_DEFAULT_BINARY_CACHE"
fi
`

// VcpkgBootstrapScript returns the script that clones and bootstraps vcpkg
// and installs the configured packages for the target triplet. It returns
// an empty string when vcpkg is disabled.
func VcpkgBootstrapScript(v config.EffectiveVcpkg) string {
	if !v.Enabled {
		return ""
	}
	if len(v.Packages) == 0 {
		return vcpkgBootstrap
	}
	pkgs := make([]string, len(v.Packages))
	for i, p := range v.Packages {
		pkgs[i] = p + ":" + v.Triplet
	}
	return vcpkgBootstrap + "\"$VCPKG_ROOT/vcpkg\" install " + strings.Join(pkgs, " ") + "\n"
}
