package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	v1 "title_builder/pkg/v1"
)

// Demonstrates embedding the title builder in another program: write a
// small data file, run the interactive session, and use the returned
// title (here as a generated file name).
func main() {
	dir, err := os.MkdirTemp("", "title_builder_example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "sections.csv")
	data := "Freq,2.4,5.1\nMod,OFDM,QAM\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		log.Fatal(err)
	}

	table, err := v1.LoadRowTable(path)
	if err != nil {
		log.Fatal(err)
	}

	sess := v1.NewRowSession(table, v1.Config{AltMode: true})
	title := v1.RunGUI(sess, v1.GUIOptions{Title: "Line Reader", SaveWord: true})

	fmt.Printf("Would create result file: %s.txt\n", title)
}
