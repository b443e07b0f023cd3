package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	kyber "ML-KEM/kyber"
	"ML-KEM/kyber/keys"
)

func usage() {
	fmt.Println(`usage: kemcli <gen|encap|decap> [options]

Subcommands:
  gen      Generate a keypair and write ./kem_keys/{public,private}.json
           Flags:
             -set   <Kyber512|Kyber768|Kyber1024>  parameter set (default: Kyber768)
             -seed  <hex>                          derive the keypair from a seed
                                                   (reproducible, testing only)

  encap    Encapsulate against ./kem_keys/public.json
           Flags:
             -out  <path>  ciphertext bundle path (default: kem_keys/ciphertext.json)
           Output (stdout): the shared secret in hex

  decap    Decapsulate a ciphertext bundle with ./kem_keys/private.json
           Flags:
             -in  <path>   ciphertext bundle path (default: kem_keys/ciphertext.json)
           Output (stdout): the shared secret in hex`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "encap":
		runEncap(os.Args[2:])
	case "decap":
		runDecap(os.Args[2:])
	default:
		usage()
	}
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	set := fs.String("set", "Kyber768", "parameter set: Kyber512|Kyber768|Kyber1024")
	seedHex := fs.String("seed", "", "hex seed for reproducible keygen (testing only)")
	fs.Parse(args)

	ps := kyber.ByName(*set)
	if ps == nil {
		log.Fatalf("unknown parameter set %q", *set)
	}

	var rng io.Reader = rand.Reader
	if *seedHex != "" {
		seed, err := hex.DecodeString(*seedHex)
		if err != nil {
			log.Fatalf("decode seed: %v", err)
		}
		rng, err = kyber.NewSeededReader(seed)
		if err != nil {
			log.Fatalf("seeded rng: %v", err)
		}
	}

	pk, sk, err := ps.GenerateKeyPair(rng)
	if err != nil {
		log.Fatalf("gen: %v", err)
	}
	if err := keys.SavePublic(keys.NewPublicKey(ps.Name, pk.Bytes())); err != nil {
		log.Fatalf("save public key: %v", err)
	}
	priv := keys.NewPrivateKey(ps.Name, sk.Bytes())
	if *seedHex != "" {
		priv.SeedHex = *seedHex
	}
	if err := keys.SavePrivate(priv); err != nil {
		log.Fatalf("save private key: %v", err)
	}
	sk.Zeroize()
	fmt.Println("keys written to ./kem_keys")
}

func runEncap(args []string) {
	fs := flag.NewFlagSet("encap", flag.ExitOnError)
	out := fs.String("out", "kem_keys/ciphertext.json", "ciphertext bundle path")
	fs.Parse(args)

	stored, err := keys.LoadPublic()
	if err != nil {
		log.Fatalf("load public key: %v", err)
	}
	ps := kyber.ByName(stored.Set)
	if ps == nil {
		log.Fatalf("public key names unknown parameter set %q", stored.Set)
	}
	raw, err := stored.Raw()
	if err != nil {
		log.Fatalf("decode public key: %v", err)
	}
	pk, err := ps.PublicKeyFromBytes(raw)
	if err != nil {
		log.Fatalf("parse public key: %v", err)
	}

	ct, ss, err := pk.Encapsulate(rand.Reader)
	if err != nil {
		log.Fatalf("encap: %v", err)
	}
	if err := keys.SaveCiphertext(*out, keys.NewCiphertext(ps.Name, ct.Bytes())); err != nil {
		log.Fatalf("save ciphertext: %v", err)
	}
	fmt.Printf("encap: set=%s ct_bytes=%d\n", ps.Name, len(ct.Bytes()))
	fmt.Printf("shared_secret=%s\n", hex.EncodeToString(ss))
	kyber.Zeroize(ss)
	fmt.Printf("ciphertext written to %s\n", *out)
}

func runDecap(args []string) {
	fs := flag.NewFlagSet("decap", flag.ExitOnError)
	in := fs.String("in", "kem_keys/ciphertext.json", "ciphertext bundle path")
	fs.Parse(args)

	stored, err := keys.LoadPrivate()
	if err != nil {
		log.Fatalf("load private key: %v", err)
	}
	ps := kyber.ByName(stored.Set)
	if ps == nil {
		log.Fatalf("private key names unknown parameter set %q", stored.Set)
	}
	raw, err := stored.Raw()
	if err != nil {
		log.Fatalf("decode private key: %v", err)
	}
	sk, err := ps.SecretKeyFromBytes(raw)
	if err != nil {
		log.Fatalf("parse private key: %v", err)
	}
	defer sk.Zeroize()

	bundle, err := keys.LoadCiphertext(*in)
	if err != nil {
		log.Fatalf("load ciphertext: %v", err)
	}
	if bundle.Set != ps.Name {
		log.Fatalf("ciphertext set %q does not match key set %q", bundle.Set, ps.Name)
	}
	ctRaw, err := bundle.Raw()
	if err != nil {
		log.Fatalf("decode ciphertext: %v", err)
	}
	ct, err := ps.CiphertextFromBytes(ctRaw)
	if err != nil {
		log.Fatalf("parse ciphertext: %v", err)
	}

	ss, err := sk.Decapsulate(ct)
	if err != nil {
		log.Fatalf("decap: %v", err)
	}
	fmt.Printf("shared_secret=%s\n", hex.EncodeToString(ss))
	kyber.Zeroize(ss)
}
