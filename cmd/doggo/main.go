// Command doggo sirve la API de paseos de perros y ofrece consultas contra
// un servidor remoto.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
