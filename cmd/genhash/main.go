// Genhash prints the bcrypt hash of a password, handy for inserting users by
// hand or rotating credentials in SQL.
package main

import (
	"fmt"
	"os"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/password"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "uso: genhash <password>")
		os.Exit(2)
	}
	hash, err := password.Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
