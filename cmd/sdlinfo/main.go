// Command sdlinfo prints what the installed SDL3 library offers: version,
// render drivers and connected joysticks.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	sdl "github.com/gogpu/sdl3"
	"github.com/gogpu/sdl3/internal/cli"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		format  = flag.String("format", "text", "output format: text or yaml")
		libPath = flag.String("lib", "", "path to the SDL3 shared library")
		verbose = flag.Bool("v", false, "log library loading details")
	)
	flag.Parse()

	sdl.SetLogger(cli.StderrLogger(*verbose))

	var opts []sdl.LoadOption
	if *libPath != "" {
		opts = append(opts, sdl.WithLibraryPath(*libPath))
	}
	if err := sdl.Load(opts...); err != nil {
		log.Fatalf("Failed to load SDL3: %v", err)
	}
	rep := collect()
	_ = sdl.Unload()

	if err := write(os.Stdout, *format, rep); err != nil {
		log.Fatal(err)
	}
}

// report is everything sdlinfo prints.
type report struct {
	Version       string     `yaml:"version"`
	Revision      string     `yaml:"revision"`
	RenderDrivers []string   `yaml:"render_drivers"`
	Joysticks     []joystick `yaml:"joysticks"`
}

type joystick struct {
	ID   uint32 `yaml:"id"`
	Name string `yaml:"name"`
	GUID string `yaml:"guid,omitempty"`
}

func collect() report {
	rep := report{
		Version:       sdl.GetVersion().String(),
		Revision:      sdl.GetRevision(),
		RenderDrivers: sdl.RenderDrivers(),
	}

	if err := sdl.Init(sdl.InitJoystick); err != nil {
		sdl.Logger().Warn("joystick subsystem unavailable", "err", err)
		return rep
	}
	defer sdl.Quit()

	ids, err := sdl.GetJoysticks()
	if err != nil {
		sdl.Logger().Warn("listing joysticks failed", "err", err)
		return rep
	}
	for _, id := range ids {
		j := joystick{ID: uint32(id)}
		j.Name, _ = sdl.GetJoystickNameForID(id)
		if g, err := sdl.GetJoystickGUIDForID(id); err == nil {
			j.GUID = g.String()
		}
		rep.Joysticks = append(rep.Joysticks, j)
	}
	return rep
}

func write(w io.Writer, format string, rep report) error {
	switch format {
	case "text":
		return writeText(w, rep)
	case "yaml":
		return writeYAML(w, rep)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
