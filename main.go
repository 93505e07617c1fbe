package main

import (
	"os"
)

func main() {
	err := rootCmd.Execute()
	if console != nil {
		if err != nil {
			console.Error("%v", err)
		}
		console.Close()
	} else if err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
	}
	if err != nil {
		os.Exit(1)
	}
}
