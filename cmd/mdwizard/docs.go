package main

import (
	"fmt"
	"log/slog"

	mdwizard "github.com/alnah/go-mdwizard"
	"github.com/alnah/go-mdwizard/internal/dateutil"
	"github.com/alnah/go-mdwizard/internal/fileutil"
	"github.com/alnah/go-mdwizard/internal/hints"
)

// runDocs writes the library reference to the -o file or stdout.
func runDocs(flags *docsFlags, env *Environment) error {
	stamp, err := dateutil.Format(env.Now(), flags.date)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}
	b := generateDocs(stamp, env.Logger(false, false))

	if flags.output == "" {
		if _, err := b.WriteTo(env.Stdout); err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Stdout)
		return err
	}

	// #nosec G306 -- documentation is meant to be readable
	if err := fileutil.WriteFileAtomic(flags.output, []byte(b.Markdown()+"\n"), filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	return nil
}

// generateDocs builds the library reference with the builder itself.
// An empty stamp omits the date from the footer.
func generateDocs(stamp string, logger *slog.Logger) *mdwizard.Builder {
	b := mdwizard.New(mdwizard.WithLogger(logger))

	b.H1("go-mdwizard", mdwizard.Underline()).
		Badge("github", "alnah", "go-mdwizard").Write(" ").
		Badge("twitter", "alnah").Write(" ").
		Badge("buymeacoffee", "alnah").
		Br().Br().
		P("Build Markdown documents from Go with chained calls. " +
			"Each call appends one fragment; " + b.InlineCode("Markdown()") + " returns the trimmed result.").
		Blockquote("The builder never parses or validates Markdown.\nWhat you write is what you get.")

	writeInstall(b)
	writeOperations(b)
	writeTables(b)
	writeLists(b)
	writeCollapsible(b)
	writeInline(b)

	b.HR().
		Write("Generated by ").
		Write(b.InlineBold("mdwizard docs"))
	if stamp != "" {
		b.Write(" on " + stamp)
	}
	b.Writeln(".")
	return b
}

func writeInstall(b *mdwizard.Builder) {
	b.H2("Install", mdwizard.Underline()).
		CodeBlock("go get github.com/alnah/go-mdwizard", "sh").
		H3("Command line").
		CodeBlock("go install github.com/alnah/go-mdwizard/cmd/mdwizard@latest\nmdwizard build recipes/ -o docs --html", "sh")
}

func writeOperations(b *mdwizard.Builder) {
	b.H2("Operations").
		P("Block operations return the builder, so calls chain:").
		CodeBlock(`b := mdwizard.New()
b.H1("Title").P("Intro.").HR()
fmt.Println(b.Markdown())`, "go").
		H3("Indentation").
		P("A level is a literal prefix of two spaces per level:").
		WritelnAt(0, "level 0").
		WritelnAt(1, "level 1").
		WriteAt(2, "level 2").
		Br().
		Br()
}

func writeTables(b *mdwizard.Builder) {
	b.H2("Tables").
		Table(
			[]string{"Alignment", "Marker", "Value"},
			[][]string{
				{mdwizard.AlignLeft.String(), b.InlineCode(":-"), "AlignLeft"},
				{mdwizard.AlignCenter.String(), b.InlineCode(":-:"), "AlignCenter"},
				{mdwizard.AlignRight.String(), b.InlineCode("-:"), "AlignRight"},
			},
			mdwizard.AlignLeft, mdwizard.AlignCenter, mdwizard.AlignRight,
		).
		Br()
}

func writeLists(b *mdwizard.Builder) {
	b.H2("Lists").
		BulletedList([]string{
			"Headings",
			"H1 and H2 take " + b.InlineCode("Underline()") + " and " + b.InlineCode("Level(n)"),
			"H3 is always plain",
			"Blocks",
		}, 0, 1, 1, 0).
		OrderedList([]string{
			"Create a builder",
			"Append fragments",
			"Read " + b.InlineCode("Markdown()"),
		})
}

func writeCollapsible(b *mdwizard.Builder) {
	example := b.Block().
		Collapsible("Badge types", mdwizard.Collapsed()).
		Br().
		Table(
			[]string{"Type", "Parameters"},
			[][]string{
				{mdwizard.BadgeBuyMeACoffee.String(), "user"},
				{mdwizard.BadgeGitHub.String(), "user, repo"},
				{mdwizard.BadgeTwitter.String(), "user"},
			},
		).
		Br().
		EndCollapsible()

	b.H2("Collapsible sections").
		P("Fragments can be composed separately with " + b.InlineCode("Block()") + " and inserted later:").
		P(example.Markdown())
}

func writeInline(b *mdwizard.Builder) {
	b.H2("Inline helpers").
		P(b.SingleLine(`Inline helpers return strings and leave the buffer alone:
			`+b.InlineItalic("italic")+`,
			`+b.InlineBold("bold")+` and
			`+b.Link("https://commonmark.org", "links", "CommonMark")+`.`)).
		P(b.Image("https://go.dev/images/go-logo-blue.svg", "Go logo", ""))
}
