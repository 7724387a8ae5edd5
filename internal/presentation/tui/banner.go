package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the interactive session.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Bone-white to amber gradient.
	s1 := termenv.String(` ____  _____ __  __   ____   ___  _   _ _____ ____`).Foreground(p.Color("#f5f5f4"))
	s2 := termenv.String(`|  _ \| ____|  \/  | | __ ) / _ \| \ | | ____/ ___|`).Foreground(p.Color("#e7e5e4"))
	s3 := termenv.String(`| | | |  _| | |\/| | |  _ \| | | |  \| |  _| \___ \`).Foreground(p.Color("#d6d3d1"))
	s4 := termenv.String(`| |_| | |___| |  | | | |_) | |_| | |\  | |___ ___) |`).Foreground(p.Color("#fbbf24"))
	s5 := termenv.String(`|____/|_____|_|  |_| |____/ \___/|_| \_|_____|____/`).Foreground(p.Color("#f59e0b"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(termenv.String("  dembones " + version).Faint())
	fmt.Println()
}
