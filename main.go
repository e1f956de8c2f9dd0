package main

import (
	"log"

	"github.com/r3r-repasses/fipehunter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
