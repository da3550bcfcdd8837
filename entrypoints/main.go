package main

import (
	"github.com/satindersinghsall/portfolio-api/cmd"
)

func main() {
	cmd.Execute()
}
