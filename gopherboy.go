// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/environment"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/notifications"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/records"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/version"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(launch(ctx, os.Stdout, os.Args[1:]))
}

// launch returns the value to use with os.Exit()
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	overrides := md.AddString("prefs", "", "preference overrides (key::value; key::value)")
	md.AddSubModes("RUN", "LIST", "EXPORT", "IMPORT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if md.Mode() == "VERSION" {
		v, r := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
		return 0
	}

	env, err := environment.NewEnvironmentWithOverrides(environment.MainEmulation,
		&notifier{output: output}, prefs.ParseOverrides(*overrides))
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, env, output)
	case "LIST":
		err = list(ctx, md, env, output)
	case "EXPORT":
		err = export(ctx, md, env, output)
	case "IMPORT":
		err = importRAM(ctx, md, env, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// notifier prints notices to the output
type notifier struct {
	output io.Writer
}

func (n *notifier) Notify(notice notifications.Notice) error {
	_, err := fmt.Fprintf(n.output, "* %s\n", notice)
	return err
}

// idleCPU is attached to the memory core when no CPU core is available. The
// InternalState region is left unchanged by the serialisation functions.
type idleCPU struct{}

func (idleCPU) SerialiseState() error   { return nil }
func (idleCPU) DeserialiseState() error { return nil }
func (idleCPU) Reset()                  {}

// echoLog sets the echo of the central logger. a terminal will receive
// colourised output
func echoLog(output *os.File) {
	if term.IsTerminal(int(output.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
	} else {
		logger.SetEcho(output)
	}
}

// loadROM loads the cartridge named in the first remaining argument
func loadROM(ctx context.Context, md *modalflag.Modes) (cartridgeloader.Loader, error) {
	if md.GetArg(0) == "" {
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	}
	cl := cartridgeloader.NewLoader(md.GetArg(0))
	if !cartridgeloader.Recognised(cl.Filename) {
		logger.Logf(logger.Allow, "gopherboy", "unrecognised file extension: %s", cl.Filename)
	}
	err := cl.Load(ctx)
	return cl, err
}

// headerFromROM extracts the cartridge header from ROM data without
// initialising a memory core
func headerFromROM(rom []byte) (cartridge.Header, error) {
	lin := memorymap.NewLinear(make([]byte, memorymap.OriginCartridgeROM+len(rom)))
	if err := lin.WriteRegion(memorymap.CartridgeROM, rom); err != nil {
		return cartridge.Header{}, err
	}
	return cartridge.ExtractHeader(lin)
}

func run(ctx context.Context, md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()
	log := md.AddBool("log", false, "echo debugging log to stdout")
	state := md.AddInt("state", env.Prefs.StartupState.Get().(int), "load save state at index on startup (-1 for default state)")
	label := md.AddString("save", "", "save a state with label when the emulation ends")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server while the emulation runs (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	cl, err := loadROM(ctx, md)
	if err != nil {
		return err
	}

	store, rc, err := memory.OpenStores(env)
	if err != nil {
		return err
	}

	mem, err := memory.NewMemory(env, idleCPU{}, store, rc)
	if err != nil {
		return err
	}

	// a context that is not cancelled by the interrupt signal for the
	// initialisation and persistence operations
	bg := context.Background()

	if err := mem.Initialize(bg, make([]byte, memorymap.OriginCartridgeROM+len(cl.Data))); err != nil {
		return err
	}

	if err := mem.LoadCartridgeROM(cl.Data); err != nil {
		return err
	}

	h, err := mem.Header()
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "%s (%s) [%s]\n", h.Title(), h.Type(), mem.RecoveryState())

	if _, err := mem.LoadCartridgeRAM(bg); err != nil {
		return err
	}

	if *state >= records.Latest {
		if err := mem.LoadState(bg, *state); err != nil {
			return err
		}
	}

	if *stats {
		statsview.Launch(ctx, output)
	}

	// the emulation runs until the process is interrupted
	<-ctx.Done()

	if *label != "" {
		if err := mem.SaveState(bg, *label); err != nil {
			logger.Log(env, "gopherboy", err)
		}
	}

	return mem.Teardown()
}

func list(ctx context.Context, md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()
	viz := md.AddBool("memviz", false, "output record as graphviz dot")
	showMap := md.AddBool("map", false, "print the linear memory map")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *showMap {
		io.WriteString(output, memorymap.Summary())
		if md.GetArg(0) == "" {
			return nil
		}
	}

	cl, err := loadROM(ctx, md)
	if err != nil {
		return err
	}

	h, err := headerFromROM(cl.Data)
	if err != nil {
		return err
	}

	store, _, err := memory.OpenStores(env)
	if err != nil {
		return err
	}

	rec, ok, err := store.GetRecord(ctx, h)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(output, "no record for %s\n", h.Title())
		return nil
	}

	if *viz {
		records.Visualise(output, h, rec)
		return nil
	}

	fmt.Fprintf(output, "%s (%s)\n", h.Title(), h.Type())
	rec.Summary(output)

	return nil
}

func export(ctx context.Context, md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1, 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cl, err := loadROM(ctx, md)
	if err != nil {
		return err
	}

	h, err := headerFromROM(cl.Data)
	if err != nil {
		return err
	}

	store, _, err := memory.OpenStores(env)
	if err != nil {
		return err
	}

	ram, ok, err := store.LoadCartridgeRAM(ctx, h)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf("no cartridge RAM stored for %s", h.Title())
	}

	// a unique filename is used if no output file is specified
	fn := md.GetArg(1)
	if fn == "" {
		fn = paths.UniqueFilename("ram", cl.ShortName(), ".sav")
	}

	if err := os.WriteFile(fn, ram, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(output, "exported %d bytes to %s\n", len(ram), fn)
	return nil
}

func importRAM(ctx context.Context, md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("cartridge and input file required for %s mode", md)
	}

	cl, err := loadROM(ctx, md)
	if err != nil {
		return err
	}

	h, err := headerFromROM(cl.Data)
	if err != nil {
		return err
	}

	sz, ok := cartridge.RAMSize(h.Type())
	if !ok {
		return curated.Errorf("%s (%s) has no cartridge RAM", h.Title(), h.Type())
	}

	ram, err := os.ReadFile(md.GetArg(1))
	if err != nil {
		return err
	}
	if len(ram) > sz {
		return curated.Errorf("%s is larger than the cartridge RAM (%d bytes)", md.GetArg(1), sz)
	}

	store, _, err := memory.OpenStores(env)
	if err != nil {
		return err
	}

	if err := store.SaveCartridgeRAM(ctx, h, ram); err != nil {
		return err
	}

	fmt.Fprintf(output, "imported %d bytes for %s\n", len(ram), h.Title())
	return nil
}
