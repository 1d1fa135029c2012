// Command hash-password prints the bcrypt hash of a password for use as
// ADMIN_PASSWORD_HASH. Run: go run ./cmd/hash-password <password>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tariquek-git/CommonJobs/internal/auth"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		log.Fatal("usage: hash-password <password>")
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}
	fmt.Println(hash)
}
