package main

import (
	"log"

	"github.com/HailNail/MindArc/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
