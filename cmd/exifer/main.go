// Exifer reports the identifying EXIF fields of image files and, on request,
// securely wipes them in place without re-encoding the image.
//
// Usage:
//
//	exifer [flags] file...
//
// Without any wipe flag the files are opened read-only and fields are only listed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gamh86/exifer"
	"github.com/gamh86/exifer/internal/mmfile"
	"github.com/hashicorp/go-multierror"
)

var (
	wipeAll      = flag.Bool("a", false, "wipe all known fields")
	wipeDate     = flag.Bool("d", false, "wipe date and time fields")
	wipeDevice   = flag.Bool("D", false, "wipe device, model and software fields")
	wipeLocation = flag.Bool("l", false, "wipe location fields (not yet supported)")
	wipeUID      = flag.Bool("u", false, "wipe the unique image ID")
	wipeComment  = flag.Bool("c", false, "wipe user comments")
	wipeMisc     = flag.Bool("m", false, "wipe image description, artist and copyright")
	noColor      = flag.Bool("no-color", false, "disable coloured output")
)

func main() {
	log.SetPrefix("exifer: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
	}
	options := &exifer.WipeOptions{
		All:      *wipeAll,
		Date:     *wipeDate,
		Device:   *wipeDevice,
		Location: *wipeLocation,
		UID:      *wipeUID,
		Comment:  *wipeComment,
		Misc:     *wipeMisc,
	}
	p := newPrinter(os.Stdout, *noColor)
	if options.Location {
		p.warn("location fields are not supported yet, -l has no effect")
	}
	var result error
	for _, path := range flag.Args() {
		if err := process(p, path, options); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil {
		log.Fatal(result)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: exifer [flags] file...\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func process(p *printer, path string, options *exifer.WipeOptions) (err error) {
	f, err := mmfile.Open(path, options.Any())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	report, err := exifer.Scan(exifer.NewBuffer(f.Data()), options)
	p.report(f.Path(), report)
	// partially wiped files are still flushed
	if f.Writable() {
		if serr := f.Sync(); serr != nil && err == nil {
			err = serr
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", f.Path(), err)
	}
	return nil
}
