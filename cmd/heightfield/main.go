package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/xlab/closer"

	"heightfield/internal/config"
	"heightfield/internal/export"
	"heightfield/internal/heightfield"
	"heightfield/internal/profiling"
	"heightfield/internal/render"
	"heightfield/internal/report"
	"heightfield/internal/terrain"
)

// extras are outputs beyond the main image.
type extras struct {
	shade   string
	caption bool
	zScale  float64
	hist    string
	bins    int
	surface string
	stride  int
	stats   bool
	verbose bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("heightfield: ")

	settings, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	var ex extras
	fs := flag.NewFlagSet("heightfield", flag.ExitOnError)
	bindFlags(fs, &settings, &ex)
	fs.Parse(os.Args[1:])

	if err := settings.Validate(); err != nil {
		log.Fatalln(err)
	}

	outs := &outputs{}
	closer.Bind(outs.closeAll)
	defer closer.Close()

	if err := run(settings, ex, outs); err != nil {
		closer.Fatalln(err)
	}
}

func bindFlags(fs *flag.FlagSet, s *config.Settings, ex *extras) {
	fs.IntVar(&s.Order, "order", s.Order, "grid order n; the grid is (2^n+1) squared")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "random seed (0 = from the clock)")
	fs.Float64Var(&s.Corner, "corner", s.Corner, "initial height of the four corners (8-bit scale)")
	fs.Float64Var(&s.Variance, "variance", s.Variance, "perturbation bound at the coarsest level (8-bit scale)")
	fs.Float64Var(&s.Roughness, "roughness", s.Roughness, "per-level decay exponent; 1 halves the bound each level")
	fs.IntVar(&s.Depth, "depth", s.Depth, "sample depth in bits (8 or 16)")
	fs.StringVar(&s.Source, "source", s.Source, "random source (uniform, splitmix)")
	fs.StringVar(&s.Output, "o", s.Output, "output image path, - for stdout")
	fs.StringVar(&s.Format, "format", s.Format, "output format (pgm, pgm-raw, png, bmp, tiff); default from -o")

	fs.StringVar(&ex.shade, "shade", "", "write a shaded relief PNG to this path")
	fs.BoolVar(&ex.caption, "caption", false, "label the relief PNG with the generation settings")
	fs.Float64Var(&ex.zScale, "zscale", 96, "relief height of a full-range sample, in cells")
	fs.StringVar(&ex.hist, "hist", "", "write a height histogram PNG to this path")
	fs.IntVar(&ex.bins, "bins", 64, "histogram bins")
	fs.StringVar(&ex.surface, "surface", "", "write an interactive 3D surface HTML page to this path")
	fs.IntVar(&ex.stride, "stride", 8, "surface sampling stride")
	fs.BoolVar(&ex.stats, "stats", false, "log height statistics")
	fs.BoolVar(&ex.verbose, "v", false, "log per-phase timings")
}

func run(s config.Settings, ex extras, outs *outputs) error {
	seed := s.ResolveSeed(time.Now())
	gen, err := terrain.NewGenerator(s.Params(seed))
	if err != nil {
		return err
	}
	format, err := s.ResolveFormat()
	if err != nil {
		return err
	}

	if s.Depth == 16 {
		err = emit[uint16](gen, format, s, ex, outs)
	} else {
		err = emit[uint8](gen, format, s, ex, outs)
	}
	if err != nil {
		return err
	}

	if ex.verbose {
		log.Printf("timings: %s", profiling.TopN(8))
	}
	return nil
}

func emit[T heightfield.Sample](gen *terrain.Generator, format export.Format, s config.Settings, ex extras, outs *outputs) error {
	grid, err := terrain.Generate[T](gen)
	if err != nil {
		return err
	}

	if ex.stats {
		log.Printf("stats: %s", terrain.Summarize(grid))
	}

	if err := outs.write(s.Output, func(w io.Writer) error {
		return export.Encode(w, grid, format)
	}); err != nil {
		return err
	}

	if ex.shade != "" {
		if err := outs.write(ex.shade, func(w io.Writer) error {
			defer profiling.Track("render.Relief")()
			img := render.Relief(grid, render.DefaultLight, float32(ex.zScale))
			if ex.caption {
				render.Caption(img, describe(gen.Params()))
			}
			return png.Encode(w, img)
		}); err != nil {
			return err
		}
	}

	if ex.hist != "" {
		if err := outs.write(ex.hist, func(w io.Writer) error {
			return report.Histogram(w, grid, ex.bins)
		}); err != nil {
			return err
		}
	}

	if ex.surface != "" {
		if err := outs.write(ex.surface, func(w io.Writer) error {
			return report.Surface(w, grid, ex.stride, describe(gen.Params()))
		}); err != nil {
			return err
		}
	}
	return nil
}

func describe(p terrain.Params) string {
	return fmt.Sprintf("%dx%d seed=%d roughness=%g %s", p.Size, p.Size, p.Seed, p.Roughness, p.Source)
}

// outputs tracks files opened for writing so an interrupted or failed run
// still closes them.
type outputs struct {
	mu   sync.Mutex
	open map[string]*os.File
}

// write opens path (or stdout for "-"), hands it to fn and closes it.
func (o *outputs) write(path string, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	o.track(path, f)

	if err := fn(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	o.untrack(path)
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Printf("wrote %s", path)
	return nil
}

func (o *outputs) track(path string, f *os.File) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.open == nil {
		o.open = make(map[string]*os.File)
	}
	o.open[path] = f
}

func (o *outputs) untrack(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.open, path)
}

func (o *outputs) closeAll() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for path, f := range o.open {
		_ = f.Close()
		delete(o.open, path)
	}
}
