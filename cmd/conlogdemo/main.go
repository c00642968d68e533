package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abyssdigger/conlog"
	"github.com/abyssdigger/conlog/logrsink"
)

const nthreads = 128

func hello(l *conlog.Logger) {
	l.LogInfo("Hello, world!")
}

// One statement per level, the build tags (or -config) decide how many show up.
func levels(l *conlog.Logger) {
	l.LogTrace("Trace message.")
	l.LogDebug("Debug message.")
	l.LogInfo("Info message.")
	l.LogWarn("Warn message.")
	l.LogError("Error message.")
	l.LogFatal("Fatal message.")
}

func styles(l *conlog.Logger) {
	arr := []int{0, 1, 2, 3}
	l.Info().Put("Info message: ", arr, ": ", len(arr)).End()
	l.LogWarn("Warn message: ", arr, ": ", len(arr))
	l.Errorf("Error message: %v: %d", arr, len(arr))
	if err := l.Infot("Info message: current_time: {}", time.Now().Format(conlog.DEFAULT_TIME_FORMAT)); err != nil {
		l.LogError("template: ", err)
	}
	if err := l.Warnt("Broken template: {} {}", "only one"); err != nil {
		l.LogError("template: ", err)
	}

	std := logrsink.New(l).WithName("demo")
	std.Info("logr bridge", "answer", 42)
	std.V(1).Info("logr debug")
}

func threads(safe, unsync *conlog.Logger) {
	run := func(l *conlog.Logger, kind string) {
		var wg sync.WaitGroup
		for i := range nthreads {
			wg.Go(func() {
				l.Info().Put(kind, " ", "log. ", "[nthreads: ", nthreads, "] ", "At ", "Index: ", i, ".").End()
			})
		}
		wg.Wait()
	}
	run(safe, "Thread-safe")
	run(unsync, "Thread-unsafe")
}

func main() {
	var configPath, example string
	flag.StringVar(&configPath, "config", "", "Path to a TOML logger configuration (build-time level when empty)")
	flag.StringVar(&example, "example", "all", "Example to run: hello, levels, styles, threads or all")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "conlog examples\n\nUsage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	safe, unsync := conlog.Default, conlog.Unsafe
	if configPath != "" {
		cfg, err := conlog.LoadConfig(configPath)
		if err != nil {
			conlog.LogError(err)
			os.Exit(1)
		}
		if safe, err = conlog.NewFromConfig(cfg); err != nil {
			conlog.LogError(err)
			os.Exit(1)
		}
		if unsync, err = conlog.NewFromConfig(cfg, conlog.Unserialized()); err != nil {
			conlog.LogError(err)
			os.Exit(1)
		}
	}

	switch example {
	case "hello":
		hello(safe)
	case "levels":
		levels(safe)
	case "styles":
		styles(safe)
	case "threads":
		threads(safe, unsync)
	case "all":
		hello(safe)
		levels(safe)
		styles(safe)
		threads(safe, unsync)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
