package main

import (
	"log/slog"
	"os"
	"runtime/pprof"
	"sync"
)

// profiles holds the optional profiles of one program run. The cpu profile
// covers everything between [startProfiles] and [profiles.finish], the
// allocation profile is taken at [profiles.finish].
type profiles struct {
	cpuFile *os.File
	memPath string

	finishOnce sync.Once
}

// startProfiles begins the cpu profile at cpuPath and remembers memPath for
// the allocation profile. Empty paths disable the respective profile, and a
// profile that cannot be started is skipped with an error logged.
func startProfiles(cpuPath string, memPath string) *profiles {
	p := &profiles{memPath: memPath}

	if cpuPath == "" {
		return p
	}

	f, err := os.Create(cpuPath)
	if err != nil {
		slog.Error("Could not create cpu profile (was skipped)", "path", cpuPath, "err", err)

		return p
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		slog.Error("Could not start cpu profile (was skipped)", "path", cpuPath, "err", err)
		f.Close()

		return p
	}

	p.cpuFile = f

	return p
}

// finish stops the cpu profile and writes the allocation profile. Only the
// first call has an effect.
func (p *profiles) finish() {
	p.finishOnce.Do(func() {
		if p.cpuFile != nil {
			pprof.StopCPUProfile()

			if err := p.cpuFile.Close(); err != nil {
				slog.Error("Could not close cpu profile", "path", p.cpuFile.Name(), "err", err)
			}
		}

		if p.memPath != "" {
			writeAllocProfile(p.memPath)
		}
	})
}

func writeAllocProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		slog.Error("Could not create allocs profile (was skipped)", "path", path, "err", err)

		return
	}
	defer f.Close()

	if err := pprof.Lookup("allocs").WriteTo(f, 0); err != nil {
		slog.Error("Could not write allocs profile", "path", path, "err", err)
	}
}
