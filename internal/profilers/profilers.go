// Package profilers set up profiling for the command-line programs.
//
// If linked, it installs the profiler flags: -prof, -cpu_profile and -mem_profile.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, serves the pprof handlers at the given port.")
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write heap profile to `file` on exit")
)

// Setup starts the HTTP (flag -prof) and CPU profilers (flag -cpu_profile), if they were configured.
// It returns the function to call before the program exits, typically deferred.
func Setup(ctx context.Context) (onQuit func(), err error) {
	var stops []func()
	if *flagProfiler >= 0 {
		addr := fmt.Sprintf("localhost:%d", *flagProfiler)
		klog.Infof("Serving profiler on http://%s/debug/pprof", addr)
		go func() {
			klog.Errorf("Profiler stopped: %v", http.ListenAndServe(addr, nil))
		}()
	}
	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create CPU profile %q", *flagCPUProfile)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, "could not start CPU profile")
		}
		stops = append(stops, func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	if *flagMemProfile != "" {
		stops = append(stops, func() {
			if err := writeHeapProfile(*flagMemProfile); err != nil {
				klog.Errorf("%+v", err)
			}
		})
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
		if ctx.Err() == nil && *flagProfiler >= 0 {
			klog.Infof("Program finished, profiler kept alive: interrupt (Ctrl+C) to exit")
			<-ctx.Done()
		}
	}, nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create heap profile %q", path)
	}
	defer func() { _ = f.Close() }()
	runtime.GC()
	return errors.Wrap(pprof.WriteHeapProfile(f), "could not write heap profile")
}
