// kzg_setup generates a new trusted setup for KZG polynomial commitments from
// a seed entered at the keyboard and saves the resulting SRS into a file. The
// secret scalar is derived from the hashed seed and destroyed immediately
// after the SRS is computed.
// Usage: kzg_setup [-degree D] [-g2] <file name>
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"syscall"

	"go.dedis.ch/kyber/v3/pairing/bn256"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/term"

	"github.com/polycommit/kzg/kzg10"
)

const minSeed = 20

func main() {
	degree := flag.Int("degree", 64, "maximum polynomial degree supported by the SRS")
	g2Powers := flag.Bool("g2", false, "also produce negative G2 powers")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Printf("Usage: kzg_setup [-degree D] [-g2] <file name>\n")
		return
	}
	fname := flag.Arg(0)
	fmt.Printf("generating new trusted KZG setup (degree %d) to file '%s'...\n", *degree, fname)
	var seed []byte
	var err error
	for {
		fmt.Printf("please enter seed > %d symbols and press ENTER (CTRL-C to exit) > ", minSeed)
		seed, err = term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			continue
		}
		if len(seed) < minSeed {
			fmt.Printf("\nerror: seed too short\n")
			continue
		}
		fmt.Println()
		break
	}
	h := blake2b.Sum256(seed)
	// destroy seed
	for i := range seed {
		seed[i] = 0
	}
	// hash seed random number of times
	for i := 0; i < 10+rand.Intn(90); i++ {
		h = blake2b.Sum256(h[:])
	}
	suite := bn256.NewSuite()
	s := suite.G1().Scalar()
	s.SetBytes(h[:])
	h = [32]byte{} // destroy secret
	sc, err := kzg10.SetupWithGenerators(suite, *degree, 0, *g2Powers, s, nil, nil)
	s.Zero() // destroy secret
	if err != nil {
		panic(err)
	}
	if err = sc.SRS().WriteFile(fname); err != nil {
		panic(err)
	}
	fmt.Printf("success. The trusted setup has been generated and saved into the file '%s'\n", fname)
	if _, err = kzg10.SRSFromFile(suite, fname); err != nil {
		fmt.Printf("reading trusted setup back from file '%s': %v\nFAIL\n", fname, err)
	} else {
		fmt.Printf("reading trusted setup back from file '%s': OK\nSUCCESS\n", fname)
	}
}
