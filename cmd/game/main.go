package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/tomz197/mergefall/internal/loop"
	"github.com/tomz197/mergefall/internal/sound"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	player := sound.NewPlayer()
	if err := player.Init(); err != nil {
		// No audio device is fine; the game stays silent.
		log.Printf("sound disabled: %v", err)
		player = nil
	}

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{Sound: player}
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
