package bootstrap

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// console writes the human-facing status lines.
type console struct {
	w io.Writer
}

func (c console) found(repo, tag string) {
	fmt.Fprintf(c.w, "Found %s release with tag %s\n", accentStyle.Render(repo), accentStyle.Render(tag))
}

func (c console) downloaded(file string, took time.Duration) {
	// The progress line is carriage-return updated; end it first.
	fmt.Fprintf(c.w, "\nDownloaded %s %s\n", file, mutedStyle.Render("in "+took.Round(time.Millisecond).String()))
}

func (c console) addedToProfile(path string) {
	fmt.Fprintln(c.w, successStyle.Render("✅ Added to profile "+path))
}

func (c console) restartShell() {
	fmt.Fprintln(c.w, mutedStyle.Render("🔄 Please restart your shell so the changes apply"))
}

func (c console) addToPathManually(name string) {
	fmt.Fprintln(c.w, warningStyle.Render("Please add this file to your PATH: "+name))
}

func (c console) windowsManual(dir, name string) {
	fmt.Fprintln(c.w, successStyle.Render(fmt.Sprintf("✅ Almost done; please manually add this program to your PATH: %s\\%s", dir, name)))
}

func (c console) warn(msg string) {
	fmt.Fprintln(c.w, warningStyle.Render("Warning: "+msg))
}
