package profiles

import (
	"fmt"
	"io"
	"strings"

	"github.com/devansh-srv/deadcode-report/config"
	"github.com/devansh-srv/deadcode-report/internal/errors"
	"github.com/devansh-srv/deadcode-report/options"
	"github.com/mgutz/ansi"
)

// Run writes every built-in profile with its tools to opts.Writer.
func Run(opts *options.AnalyzerOptions) error {
	nameColor := func(s string) string { return s }
	if opts.ShouldColor() {
		nameColor = ansi.ColorFunc("cyan+b")
	}

	for i, profile := range config.BuiltinProfiles() {
		if i > 0 {
			if _, err := io.WriteString(opts.Writer, "\n"); err != nil {
				return errors.New(err)
			}
		}

		if err := writeProfile(opts.Writer, profile, nameColor); err != nil {
			return err
		}
	}

	return nil
}

func writeProfile(w io.Writer, profile *config.Profile, nameColor func(string) string) error {
	var sb strings.Builder

	name := profile.Name
	if name == config.DefaultProfileName {
		name += " (default)"
	}

	fmt.Fprintf(&sb, "%s: %s\n", nameColor(name), profile.Project)
	fmt.Fprintf(&sb, "  files:    *%s\n", profile.SourceExtension)
	fmt.Fprintf(&sb, "  excluded: %s\n", strings.Join(profile.ExcludedDirs, ", "))

	width := 0
	for _, tool := range profile.Tools {
		width = max(width, len(tool.Name))
	}

	for _, tool := range profile.Tools {
		fmt.Fprintf(&sb, "  - %-*s  %s\n", width, tool.Name, tool.Command)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.New(err)
	}

	return nil
}
