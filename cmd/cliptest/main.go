//go:build ignore

// Manual check of the system clipboard: go run ./cmd/cliptest
package main

import (
	"fmt"

	"github.com/zhubert/jwtui/internal/clipboard"
)

func main() {
	clip := clipboard.NewSystem()

	fmt.Println("Testing clipboard read...")
	text, err := clip.ReadText()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if text == "" {
		fmt.Println("Clipboard is empty")
	} else {
		fmt.Printf("Clipboard holds %d bytes\n", len(text))
	}

	fmt.Println("Testing clipboard write...")
	if err := clip.WriteText("jwtui clipboard test"); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Wrote test text; paste somewhere to check")
}
