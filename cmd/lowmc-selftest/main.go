// Command lowmc-selftest exercises a LowMC parameter set end to end: it
// loads or generates constants, round-trips a random key/plaintext pair,
// and checks the parameter set's published test vectors, if any.
//
// Usage:
//
//	lowmc-selftest <picnic-L1|picnic-L3|picnic-L5> [constants-file]
//
// With no constants-file argument, fresh constants are generated
// in-memory rather than loaded from disk.
package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/lowmc-go/lowmc"
)

type vector struct {
	tag         string
	keyPrefix   string
	plainPrefix string
	cipherHex   string
}

// vectors are the published Picnic key/plaintext/ciphertext triples.
// All key and plaintext bytes beyond the listed prefix are zero.
var vectors = []vector{
	{"picnic-L1", "80", "ABFF", "0E30720B9F64D5C2A7771C8C238D8F70"},
	{"picnic-L1", "B5DF537B", "F77DB57B", "0E5961E9992153B13245AF243DD7DDC0"},
	{"picnic-L1", "084C2A6E195D3B7F", "F7B3D591E6A2C480", "915C6321D78646B6C76543FFB8523B4D"},
	{"picnic-L3", "80", "ABFF", "A85B8244344A2E1B10A17BAB043073F6BB649AE6AF659F6F"},
	{"picnic-L5", "80", "ABFF", "B8F20A888A0A9EC4E495F1FB439ABDDE18C1D3D29CF20DF4B10A567AA02C7267"},
	{"picnic-L5", "B5DF537B", "F77DB57B", "EEECCE6A584A93306DAEA07519B47AD6402C11DD942AA3166541444977A214C5"},
}

func leftPad(prefixHex string, n int) []byte {
	prefix, err := hex.DecodeString(prefixHex)
	if err != nil {
		log.Fatalf("bad fixture hex %q: %v", prefixHex, err)
	}
	out := make([]byte, n)
	copy(out, prefix)
	return out
}

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		log.Fatalf("usage: %s <picnic-L1|picnic-L3|picnic-L5> [constants-file]", os.Args[0])
	}
	tag := os.Args[1]

	params, err := lowmc.Lookup(tag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var cipher *lowmc.Cipher
	if len(os.Args) == 3 {
		f, err := os.Open(os.Args[2])
		if err != nil {
			log.Fatalf("failed to open %s: %v", os.Args[2], err)
		}
		defer f.Close()
		cipher, err = lowmc.New(tag, f)
		if err != nil {
			log.Fatalf("failed to load constants: %v", err)
		}
	} else {
		fmt.Printf("generating fresh constants for %s...\n", tag)
		constants, err := lowmc.Generate(params)
		if err != nil {
			log.Fatalf("generation failed: %v", err)
		}
		cipher = lowmc.NewFromConstants(constants)
	}

	fmt.Printf("round-trip check (%s, random key/plaintext)...\n", tag)
	if _, err := cipher.GeneratePrivateKey(); err != nil {
		log.Fatalf("key generation failed: %v", err)
	}

	block := make([]byte, cipher.BlockSize())
	if _, err := rand.Read(block); err != nil {
		log.Fatalf("plaintext generation failed: %v", err)
	}
	ciphertext, err := cipher.Encrypt(block)
	if err != nil {
		log.Fatalf("encrypt failed: %v", err)
	}
	recovered, err := cipher.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("decrypt failed: %v", err)
	}
	if !bytes.Equal(block, recovered) {
		log.Fatalf("round-trip mismatch: got %x, want %x", recovered, block)
	}
	fmt.Println("round-trip OK")

	checked := 0
	for _, v := range vectors {
		if v.tag != tag {
			continue
		}
		key := leftPad(v.keyPrefix, params.KeyBytes())
		plain := leftPad(v.plainPrefix, params.BlockBytes())
		wantCipher, err := hex.DecodeString(v.cipherHex)
		if err != nil {
			log.Fatalf("bad fixture ciphertext hex: %v", err)
		}

		if err := cipher.SetPrivateKey(key); err != nil {
			log.Fatalf("set private key failed: %v", err)
		}
		gotCipher, err := cipher.Encrypt(plain)
		if err != nil {
			log.Fatalf("vector encrypt failed: %v", err)
		}
		if !bytes.Equal(gotCipher, wantCipher) {
			log.Fatalf("vector mismatch: key=%s plain=%s: got %X, want %X",
				v.keyPrefix, v.plainPrefix, gotCipher, wantCipher)
		}

		gotPlain, err := cipher.Decrypt(wantCipher)
		if err != nil {
			log.Fatalf("vector decrypt failed: %v", err)
		}
		if !bytes.Equal(gotPlain, plain) {
			log.Fatalf("vector decrypt mismatch: key=%s cipher=%s: got %X, want %X",
				v.keyPrefix, v.cipherHex, gotPlain, plain)
		}
		checked++
	}
	fmt.Printf("%d published test vector(s) checked for %s\n", checked, tag)
}
