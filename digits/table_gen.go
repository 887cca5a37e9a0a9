//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
)

func main() {
	pairs := func() [200]byte {
		var b [200]byte
		for i := 0; i < 100; i++ {
			b[2*i] = '0' + byte(i/10)
			b[2*i+1] = '0' + byte(i%10)
		}
		return b
	}()

	hex := func() [16]byte {
		var b [16]byte
		for i := 0; i < 16; i++ {
			if i < 10 {
				b[i] = '0' + byte(i)
			} else {
				b[i] = 'a' + byte(i) - 10
			}
		}
		return b
	}()

	w := bytes.NewBufferString(pre)
	fmt.Fprintf(w, "// Pairs holds the ASCII digits of 00..99; the pair for n starts at 2*n.\n")
	fmt.Fprintf(w, "const Pairs = %q\n\n", pairs)
	fmt.Fprintf(w, "// Hex holds the lowercase hexadecimal digit for each nibble value.\n")
	fmt.Fprintf(w, "const Hex = %q\n", hex)

	if err := os.WriteFile("table.go", w.Bytes(), 0o660); err != nil {
		log.Fatal(err)
	}
}

const pre = `package digits

// Code generated by go run table_gen.go; DO NOT EDIT.
// See table_gen.go for more information about these tables.

`
