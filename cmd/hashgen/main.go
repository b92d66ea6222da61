// hashgen, IMS_ADMIN_PASSWORD_HASH ortam değişkeni için bcrypt hash üretir.
//
// Kullanım: hashgen <şifre>
package main

import (
	"fmt"
	"log"
	"os"

	"envanter-cli/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "kullanım: hashgen <şifre>")
		os.Exit(2)
	}

	hash, err := auth.HashPassword(os.Args[1], 12)
	if err != nil {
		log.Fatalf("Hash üretilemedi: %v", err)
	}
	fmt.Println(hash)
}
