package main

import (
	"fmt"
	"log"

	"github.com/HicaroD/mica/config"
)

var DevMode string

func main() {
	config.SetDevMode(DevMode == "1")
	if config.DEV {
		fmt.Println("[DEV MODE] initialized")
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
