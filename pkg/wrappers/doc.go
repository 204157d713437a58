// Package wrappers generates the shell scripts wincross places in the state
// directory and build tree:
//
//   - winexe wrappers (<state>/bin/<name>) run a Windows executable under
//     Wine when its first two bytes are "MZ", otherwise exec it directly
//   - the cross emulator (<state>/bin/wincross-emulator) always runs its first
//     argument under Wine; CMake uses it as CMAKE_CROSSCOMPILING_EMULATOR
//   - bin aliases (<build>/bin/<name>) redirect to the like-named script in
//     <state>/bin
//   - the mt.exe shim (<state>/mt-wrapper.sh)
//
// Every script is written only when its content changes, so regenerating
// with an unchanged configuration touches nothing.
package wrappers
