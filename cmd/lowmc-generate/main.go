// Command lowmc-generate writes a constants file for one LowMC security
// level to the current working directory.
//
// Usage:
//
//	lowmc-generate <picnic-L1|picnic-L3|picnic-L5>
//
// The output is written to "<tag>.dat" and can be loaded back with
// lowmc.New.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lowmc-go/lowmc"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <picnic-L1|picnic-L3|picnic-L5>", os.Args[0])
	}
	tag := os.Args[1]

	params, err := lowmc.Lookup(tag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("generating constants for %s (block=%d key=%d rounds=%d)...\n",
		params.Tag, params.BlockSize, params.KeySize, params.Rounds)

	constants, err := lowmc.Generate(params)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	outPath := params.Tag + ".dat"
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", outPath, err)
	}
	defer f.Close()

	if err := lowmc.WriteConstants(f, constants); err != nil {
		log.Fatalf("failed to write %s: %v", outPath, err)
	}

	fmt.Printf("wrote %s\n", outPath)
}
