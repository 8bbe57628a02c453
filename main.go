package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"
	"github.com/rivo/uniseg"
	"github.com/spf13/afero"
	"golang.org/x/image/bmp"
	"golang.org/x/text/language"

	"github.com/jyane/jnds/archive"
	"github.com/jyane/jnds/catalog"
	"github.com/jyane/jnds/filesize"
	"github.com/jyane/jnds/nds"
	"github.com/jyane/jnds/romdb"
	"github.com/jyane/jnds/ui"
)

var (
	path       = flag.String("path", "", "path to NDS ROM file, plain or archived")
	dir        = flag.String("dir", "", "list the ROMs under a directory")
	header     = flag.Bool("header", false, "dump every header field")
	banner     = flag.Bool("banner", false, "print the banner titles")
	lang       = flag.String("lang", "en", "banner title language")
	iconOut    = flag.String("icon", "", "write the banner icon to a BMP file")
	out        = flag.String("out", "", "write the padded and repaired image to a file")
	view       = flag.Bool("view", false, "open a window playing the banner icon")
	scale      = flag.Int("scale", 8, "icon window scale")
	dump       = flag.Bool("spew", false, "dump the decoded structures")
	noRepair   = flag.Bool("norepair", false, "keep decrypted secure areas as they are")
	workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "concurrent loads when listing a directory")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func init() {
	runtime.LockOSThread()
}

func loadOptions() []nds.Option {
	opts := []nds.Option{nds.WithParams(romdb.Default())}
	if *noRepair {
		opts = append(opts, nds.WithoutRepair())
	}
	return opts
}

func main() {
	flag.Parse()
	defer glog.Flush()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	fs := afero.NewOsFs()
	if *dir != "" {
		if err := listDir(os.Stdout, fs, *dir); err != nil {
			glog.Fatalln("Failed to list: ", err)
		}
		return
	}
	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: jnds -path <rom> [flags] | jnds -dir <directory>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	buf, err := archive.ReadFile(fs, *path)
	if err != nil {
		glog.Fatalln("Failed to read: "+*path, err)
	}
	rom, err := nds.Load(buf, loadOptions()...)
	if err != nil {
		glog.Fatalln("Failed to load ROM: ", err)
	}
	if err := run(os.Stdout, fs, rom); err != nil {
		glog.Fatalln(err)
	}
	if *view {
		if rom.Banner == nil {
			glog.Fatalln("ROM has no banner")
		}
		ui.Start(rom.Banner, rom.Header.GameTitle.String(), *scale)
	}
}

func run(w io.Writer, fs afero.Fs, rom *nds.Rom) error {
	switch {
	case *dump:
		spew.Fdump(w, rom.Header, rom.Banner, rom.Params())
	case *header:
		if err := rom.Header.Dump(w); err != nil {
			return err
		}
	case *banner:
		if rom.Banner == nil {
			return fmt.Errorf("%s has no banner", rom.Header.GameCode)
		}
		if err := printTitle(w, rom.Banner); err != nil {
			return err
		}
	case *iconOut == "" && *out == "" && !*view:
		if err := nds.WriteInfo(w, rom); err != nil {
			return err
		}
	}

	if *iconOut != "" {
		if rom.Banner == nil {
			return fmt.Errorf("%s has no banner", rom.Header.GameCode)
		}
		if err := writeIcon(fs, *iconOut, rom.Banner); err != nil {
			return err
		}
	}
	if *out != "" {
		if err := afero.WriteFile(fs, *out, rom.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing image: %w", err)
		}
		glog.Infof("Wrote %s (%s)", *out, filesize.Size(rom.Size()))
	}
	return nil
}

func printTitle(w io.Writer, bn *nds.Banner) error {
	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("bad -lang: %w", err)
	}
	for _, line := range nds.TitleLines(bn.Title(tag)) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeIcon(fs afero.Fs, name string, bn *nds.Banner) error {
	f, err := fs.Create(name)
	if err != nil {
		return fmt.Errorf("creating icon: %w", err)
	}
	if err := bmp.Encode(f, bn.IconImage()); err != nil {
		f.Close()
		return fmt.Errorf("encoding icon: %w", err)
	}
	return f.Close()
}

// pad right-pads s to width terminal cells. Banner titles mix ASCII with
// full-width Japanese and Korean text.
func pad(s string, width int) string {
	if n := uniseg.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func listDir(w io.Writer, fs afero.Fs, dir string) error {
	c, err := catalog.New(fs, catalog.WithWorkers(*workers), catalog.WithLoadOptions(loadOptions()...))
	if err != nil {
		return err
	}
	entries, err := c.Scan(context.Background(), dir)
	if err != nil {
		return err
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("bad -lang: %w", err)
	}
	rows := make([][4]string, 0, len(entries))
	var widths [4]int
	for _, e := range entries {
		var row [4]string
		if e.Err != nil {
			row = [4]string{"????", "error: " + e.Err.Error(), "", e.Path}
		} else {
			title := e.Rom.Header.GameTitle.String()
			if e.Rom.Banner != nil {
				title = nds.TitleLines(e.Rom.Banner.Title(tag))[0]
			}
			row = [4]string{e.Rom.Header.GameCode.String(), title, e.Rom.Params().SramKind.String(), e.Path}
		}
		for i, cell := range row {
			if n := uniseg.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
		rows = append(rows, row)
	}
	for _, row := range rows {
		_, err := fmt.Fprintf(w, "%s  %s  %s  %s\n", pad(row[0], widths[0]), pad(row[1], widths[1]), pad(row[2], widths[2]), row[3])
		if err != nil {
			return err
		}
	}
	return nil
}
