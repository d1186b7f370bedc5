package format

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/arthur-debert/pkgls/pkg/ui/columns"
)

// htmlIndexColumns is the forced column count of the cross-reference
// table; the HTML fragment is inlined into documentation pages, so the
// layout cannot depend on a terminal.
const htmlIndexColumns = 3

// HTML renders the package list as an inline HTML fragment (not a
// full page): a summary paragraph, a cross-reference table, and one
// div section per package. Raw text is HTML-escaped; anchors and
// hrefs are emitted as-is.
func HTML(w io.Writer, names []string, cat catalog.Catalog, opts Options) error {
	pkgs, err := resolveAll(cat, names)
	if err != nil {
		return err
	}
	inResult := nameSet(names)

	p := &printer{w: w}

	p.line("<p>")
	p.line(fmt.Sprintf("The catalog currently has %d packages:", len(pkgs)))
	p.line("</p>")

	p.line(`<table border="1" class="docutils">`)
	p.line(`<tbody valign="top">`)
	i := 0
	for row := range columns.Rows(names, htmlIndexColumns) {
		if i%2 == 0 {
			p.line(`<tr class="row-odd">`)
		} else {
			p.line(`<tr class="row-even">`)
		}
		for _, name := range row {
			if name == "" {
				p.line("<td></td>")
				continue
			}
			p.line(fmt.Sprintf(`<td><a class="reference internal" href="#%s">%s</a></td>`, name, name))
		}
		p.line("</tr>")
		i++
	}
	p.line("</tbody>")
	p.line("</table>")
	p.line(`<hr class="docutils"/>`)

	// The surrounding page claims id1 for its own title, so section
	// anchors start at 2.
	spanID := 2
	for _, pkg := range pkgs {
		p.line(fmt.Sprintf(`<div class="section" id="%s">`, pkg.Name))
		p.line(fmt.Sprintf(`<span id="id%d"></span><h1>%s<a class="headerlink" href="#%s" `+
			`title="Permalink to this headline">&para;</a></h1>`, spanID, pkg.Name, pkg.Name))
		spanID++

		p.line(`<dl class="docutils">`)

		p.line("<dt>Homepage:</dt>")
		p.line(`<dd><ul class="first last simple">`)
		p.line(fmt.Sprintf(`<li><a class="reference external" href="%s">%s</a></li>`,
			pkg.Homepage, html.EscapeString(pkg.Homepage)))
		p.line("</ul></dd>")

		p.line("<dt>Package source:</dt>")
		p.line(`<dd><ul class="first last simple">`)
		p.line(fmt.Sprintf(`<li><a class="reference external" href="%s">%s</a></li>`,
			opts.sourceLink(pkg.Name), pkg.Name))
		p.line("</ul></dd>")

		if len(pkg.Versions) > 0 {
			p.line("<dt>Versions:</dt>")
			p.line("<dd>")
			p.line(versionList(pkg))
			p.line("</dd>")
		}

		for _, deptype := range catalog.AllDependencyTypes {
			deps := pkg.DependenciesOfType(deptype)
			if len(deps) == 0 {
				continue
			}
			p.line(fmt.Sprintf("<dt>%s Dependencies:</dt>", deptype.Title()))
			p.line("<dd>")
			refs := make([]string, len(deps))
			for j, dep := range deps {
				if inResult[dep] {
					refs[j] = fmt.Sprintf(`<a class="reference internal" href="#%s">%s</a>`, dep, dep)
				} else {
					refs[j] = dep
				}
			}
			p.line(strings.Join(refs, ", "))
			p.line("</dd>")
		}

		p.line("<dt>Description:</dt>")
		p.line("<dd>")
		p.line(html.EscapeString(pkg.Description))
		p.line("</dd>")
		p.line("</dl>")

		p.line(`<hr class="docutils"/>`)
		p.line("</div>")
	}

	return p.err
}
