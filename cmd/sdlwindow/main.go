// Command sdlwindow opens an SDL window and draws gg graphics into it.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"

	sdl "github.com/gogpu/sdl3"
	"github.com/gogpu/sdl3/integration/ggsdl"
	"github.com/gogpu/sdl3/internal/cli"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(sdlwindow(os.Args[1:], run))
}

type options struct {
	title         string
	width, height int
	vsync, frames int
}

// sdlwindow returns the exit code, so deferred calls such as the profile
// Stop run before the process exits.
func sdlwindow(args []string, body func(options) error) int {
	var o options
	fs := flag.NewFlagSet("sdlwindow", flag.ContinueOnError)
	fs.IntVar(&o.width, "width", 800, "window width")
	fs.IntVar(&o.height, "height", 600, "window height")
	fs.StringVar(&o.title, "title", "sdlwindow", "window title")
	fs.IntVar(&o.vsync, "vsync", 1, "vsync interval (0 off, -1 adaptive)")
	fs.IntVar(&o.frames, "frames", 0, "exit after this many frames (0 runs until closed)")
	cpuprofile := fs.String("cpuprofile", "", "write a CPU profile to this directory")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	sdl.SetLogger(cli.StderrLogger(*verbose))

	if err := body(o); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func run(o options) error {
	if err := sdl.Load(); err != nil {
		return err
	}
	defer func() { _ = sdl.Unload() }()

	if err := sdl.Init(sdl.InitVideo); err != nil {
		return err
	}
	defer sdl.Quit()

	var scope sdl.Scope
	defer scope.Close()

	win, err := sdl.CreateWindow(o.title, o.width, o.height, sdl.WindowResizable)
	if err != nil {
		return err
	}
	scope.Add(win)

	r, err := sdl.CreateRenderer(win, sdl.WithVSync(o.vsync))
	if err != nil {
		return err
	}
	scope.Add(r)

	if name, err := r.Name(); err == nil {
		sdl.Logger().Info("renderer ready", "driver", name)
	}

	canvas, err := ggsdl.New(ggsdl.FromRenderer(r), o.width, o.height)
	if err != nil {
		return err
	}
	defer canvas.Close()

	d := &demo{}
	for frame := 0; o.frames == 0 || frame < o.frames; frame++ {
		if !d.handleEvents(canvas) {
			break
		}
		if err := d.drawFrame(r, canvas); err != nil {
			return err
		}
	}
	return nil
}
