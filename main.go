package main

import (
	"os"

	"lesiw.io/seedgrinder/hive"
)

func main() {
	os.Exit(hive.Command(os.Args...).Run())
}
