// cmd/modaldump/main.go
package main

import (
	"encoding/hex"
	"flag"
	"log"
	"os"
	"strings"
)

func main() {
	typ := flag.Int("type", -1, "modal query type (-4..-1, 0..20, 100..126, 200..207, 300)")
	block := flag.Int("block", 0, "program block: 0 active, 1 next, 2 next-after-next")
	hexPayload := flag.String("hex", "", "payload as hex bytes")
	file := flag.String("file", "", "payload as raw binary file")
	flag.Parse()

	log.SetFlags(0)

	var (
		data []byte
		err  error
	)

	switch {
	case *hexPayload != "":
		data, err = hex.DecodeString(strings.Join(strings.Fields(*hexPayload), ""))
	case *file != "":
		data, err = os.ReadFile(*file)
	default:
		log.Fatal("usage: modaldump -type N -block B (-hex HEX | -file PATH)")
	}
	if err != nil {
		log.Fatalf("payload: %v", err)
	}

	if err := dump(os.Stdout, *typ, *block, data); err != nil {
		log.Fatalf("modaldump: %v", err)
	}
}
