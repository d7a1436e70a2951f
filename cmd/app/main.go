package main

import (
	"os"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
