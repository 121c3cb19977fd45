// peptidegen converts an MSstats quantification table and an SDRF
// experiment-design file into a single peptide intensity CSV carrying the
// sample and study context needed for downstream normalization.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mobiusklein/ibaqpy"
	"github.com/mobiusklein/ibaqpy/peptides"
)

func main() {
	var (
		msstats  string
		sdrf     string
		output   string
		compress bool
	)
	flag.StringVar(&msstats, "msstats", "", "MSstats file import generated by quantms")
	flag.StringVar(&msstats, "m", "", "(shorthand for -msstats)")
	flag.StringVar(&sdrf, "sdrf", "", "SDRF file import generated by quantms")
	flag.StringVar(&sdrf, "s", "", "(shorthand for -sdrf)")
	flag.StringVar(&output, "output", "", "Peptide intensity file including all other properties for normalization")
	flag.StringVar(&output, "o", "", "(shorthand for -output)")
	flag.BoolVar(&compress, "compress", false, "Read all files compressed")
	flag.Parse()

	if msstats == "" || sdrf == "" || output == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	var err error
	if msstats, err = ibaqpy.ExpandHome(msstats); err != nil {
		log.Fatalln(err)
	}
	if sdrf, err = ibaqpy.ExpandHome(sdrf); err != nil {
		log.Fatalln(err)
	}
	if output, err = ibaqpy.ExpandHome(output); err != nil {
		log.Fatalln(err)
	}

	pipeline := peptides.Pipeline{
		Msstats:  msstats,
		SDRF:     sdrf,
		Output:   output,
		Compress: compress,
	}

	if err := pipeline.Run(); err != nil {
		log.Fatalln(err)
	}
}
