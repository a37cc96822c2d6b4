package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	headerRuleWidth  = 80
	sectionRuleWidth = 50
)

// Console writes the human readable progress of a run. It is not a machine readable contract,
// write errors are ignored the same way progress output to a terminal usually is.
type Console struct {
	writer    io.Writer
	colorizer *Colorizer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, shouldColor bool) *Console {
	return &Console{
		writer:    w,
		colorizer: NewColorizer(shouldColor),
	}
}

// Header prints the run title between two rules.
func (console *Console) Header(title string) {
	rule := console.colorizer.ruleColorizer(strings.Repeat("=", headerRuleWidth))

	console.printf("%s\n🔍 %s\n%s\n", rule, console.colorizer.headingColorizer(title), rule)
}

// Section prints the marker that starts a step of the run.
func (console *Console) Section(title string) {
	console.printf("\n📊 %s...\n%s\n",
		console.colorizer.sectionColorizer(title),
		console.colorizer.ruleColorizer(strings.Repeat("-", sectionRuleWidth)),
	)
}

// ToolOutput echoes the raw standard output of a tool. Empty output prints nothing.
func (console *Console) ToolOutput(output string) {
	if output == "" {
		return
	}

	console.printf("%s\n", output)
}

// ToolDone prints the one-line confirmation of a finished tool.
func (console *Console) ToolDone(run *ToolRun) {
	console.printf("✅ Found %s %s\n", console.colorizer.countColorizer(fmt.Sprint(run.IssueCount)), run.IssueNoun)
}

// FilesFound prints the size of the file inventory. An empty language falls back to the extension.
func (console *Console) FilesFound(inventory *FileInventory, language string) {
	if language == "" {
		language = inventory.Extension
	}

	console.printf("📁 Found %s %s files\n", console.colorizer.countColorizer(fmt.Sprint(inventory.Total())), language)
}

// ContractsFound prints the totals of the contract declaration inventory.
func (console *Console) ContractsFound(analysisPath string, files, functions, variables, events int) {
	console.printf("📄 Contract analysis: %s\n", console.colorizer.pathColorizer(analysisPath))
	console.printf("  - %s contract files\n", console.colorizer.countColorizer(fmt.Sprint(files)))
	console.printf("  - %s functions found\n", console.colorizer.countColorizer(fmt.Sprint(functions)))
	console.printf("  - %s variables/mappings found\n", console.colorizer.countColorizer(fmt.Sprint(variables)))
	console.printf("  - %s events found\n", console.colorizer.countColorizer(fmt.Sprint(events)))
}

// Banner prints the closing banner of a run. The listing is the content of the reports directory as read from disk.
func (console *Console) Banner(reportsDir, summaryPath string, totalIssues int, listing []string) {
	console.printf("\n🎉 %s\n%s\n", console.colorizer.successColorizer("Analysis Complete!"),
		console.colorizer.ruleColorizer(strings.Repeat("=", headerRuleWidth)))
	console.printf("📁 Reports saved to: %s\n", console.colorizer.pathColorizer(reportsDir))
	console.printf("📄 Summary report: %s\n", console.colorizer.pathColorizer(summaryPath))
	console.printf("🔍 Total issues found: %s\n", console.colorizer.countColorizer(fmt.Sprint(totalIssues)))
	console.printf("\nReports generated:\n")

	for _, name := range listing {
		console.printf("  - %s\n", name)
	}
}

// Verdict prints the final line of a run.
func (console *Console) Verdict(totalIssues int) {
	if totalIssues > 0 {
		console.printf("\n⚠️  %s\n", console.colorizer.warningColorizer(
			fmt.Sprintf("%d potential issues found - review the reports!", totalIssues)))

		return
	}

	console.printf("\n✅ %s\n", console.colorizer.successColorizer("No issues found!"))
}

func (console *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(console.writer, format, args...)
}
