// Package paths provides centralized path handling for wincross.
//
// It handles:
//
//   - Project root discovery (--root, WINCROSS_ROOT, marker files)
//   - Project and build config locations
//   - The project-local state directory layout (.wincross/)
//   - Confinement checks and host to container path mapping
//
// # State Directory Layout
//
//	<root>/.wincross/
//	    build_config.json   generated by `wincross init`
//	    build-windows/      default build directory
//	    vcpkg/ vcpkg/bincache/
//	    sccache/ wine/ home/ logs/
//	    bin/                generated wrapper scripts
//	    xdg-runtime/        owner-only
//	    mt-wrapper.sh
//
// # Container Mapping
//
// The project root is mounted at a fixed container root (/work/project).
// Every host path that must be visible in the container has to live under
// the project root; ToContainerPath fails with PATH_OUTSIDE_ROOT otherwise.
package paths
