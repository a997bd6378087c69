// Package profile starts optional runtime profiling of msdscript using
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	msdscript --pprof-mode cpu eval fact.msd
//	go tool pprof -http=: "$(go env GOCACHE)/../msdscript/pprof/cpu.pprof"
//
// Without the tag, [Modes] is empty and [Profiler.Start] is a no-op.
//
// The CPU and clock modes are most useful for deep recursion in the
// interpreter. The mem and allocs modes show environment and closure
// allocation.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
