package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/waxwing-chess/engine/internal/engine"
	"github.com/waxwing-chess/engine/internal/xboard"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	verbose    = flag.Bool("verbose", false, "enable debug logging to stderr")
	post       = flag.Bool("post", false, "start with PV info lines enabled")
	hashMB     = flag.Int("hash", 0, "transposition table size in MB (0 = default bucket count)")
)

func main() {
	flag.Parse()
	engine.SetVerbose(*verbose)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	eng := engine.NewEngineWithHash(*hashMB)
	protocol := xboard.NewProtocol(eng, os.Stdout)
	protocol.SetPosting(*post)
	protocol.Run(os.Stdin)
}
