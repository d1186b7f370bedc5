package format

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/arthur-debert/pkgls/pkg/ui/columns"
)

// RST renders the package list as a reStructuredText document: an
// anchored title, a cross-reference index table, and one section per
// package.
func RST(w io.Writer, names []string, cat catalog.Catalog, opts Options) error {
	pkgs, err := resolveAll(cat, names)
	if err != nil {
		return err
	}
	inResult := nameSet(names)

	p := &printer{w: w}

	p.line(".. _package-list:")
	p.line("")
	p.line("============")
	p.line("Package List")
	p.line("============")
	p.line("")
	p.line("This is a list of things you can install using pkgls. It is")
	p.line("automatically generated based on the packages in the catalog.")
	p.line("")
	p.line(fmt.Sprintf("The catalog currently has %d packages:", len(pkgs)))
	p.line("")

	refs := make([]string, len(names))
	for i, name := range names {
		refs[i] = fmt.Sprintf("`%s`_", name)
	}
	p.rstTable(refs, opts.Width)
	p.line("")

	for _, pkg := range pkgs {
		p.line("-----")
		p.line("")
		p.line(fmt.Sprintf(".. _%s:", pkg.Name))
		p.line("")

		// Heading rules must be at least 2 long; a 1-character rule
		// breaks for single letter packages like R.
		rule := strings.Repeat("-", max(len(pkg.Name), 2))
		p.line(rule)
		p.line(pkg.Name)
		p.line(rule)
		p.line("")

		p.line("Homepage:")
		p.line(fmt.Sprintf("  * `%s <%s>`__", html.EscapeString(pkg.Homepage), pkg.Homepage))
		p.line("")

		p.line("Package source:")
		p.line(fmt.Sprintf("  * `%s <%s>`__", pkg.Name, opts.sourceLink(pkg.Name)))
		p.line("")

		if len(pkg.Versions) > 0 {
			p.line("Versions:")
			p.line("  " + versionList(pkg))
			p.line("")
		}

		for _, deptype := range catalog.AllDependencyTypes {
			deps := pkg.DependenciesOfType(deptype)
			if len(deps) == 0 {
				continue
			}
			p.line(fmt.Sprintf("%s Dependencies", deptype.Title()))
			refs := make([]string, len(deps))
			for i, dep := range deps {
				if inResult[dep] {
					refs[i] = dep + "_"
				} else {
					refs[i] = dep
				}
			}
			p.line("  " + strings.Join(refs, ", "))
			p.line("")
		}

		p.line("Description:")
		p.line(indent(pkg.Description, "  "))
		p.line("")
	}

	return p.err
}

// printer accumulates the first write error so formatting code can
// stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

// rstTable writes elts as an RST simple table: a rule of = runs, the
// colified rows, and the rule again.
func (p *printer) rstTable(elts []string, width int) {
	if len(elts) == 0 {
		return
	}
	ncols, widths := columns.Layout(elts, width)

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("=", w-1)
	}
	header := strings.Join(rules, " ")

	p.line(header)
	if p.err == nil {
		p.err = columns.Render(p.w, elts, ncols, widths)
	}
	p.line(header)
}

// indent prefixes every non-empty line of text
func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
