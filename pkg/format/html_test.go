package format_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/arthur-debert/pkgls/pkg/format"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderHTML(t *testing.T, names []string, cat catalog.Catalog) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, format.HTML(&buf, names, cat, testOptions()))
	return buf.String()
}

// parseFragment loads the emitted fragment into an XML tree. The
// fragment has multiple roots, so it is wrapped; the &para; entity is
// substituted since it is defined by HTML, not XML.
func parseFragment(t *testing.T, fragment string) *etree.Document {
	t.Helper()
	wrapped := "<root>" + strings.ReplaceAll(fragment, "&para;", "¶") + "</root>"

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(wrapped), "formatter output must be well-formed")
	return doc
}

func TestHTMLSummaryAndTable(t *testing.T) {
	out := renderHTML(t, []string{"hdf5", "R", "zlib"}, testCatalog())
	doc := parseFragment(t, out)

	p := doc.FindElement("/root/p")
	require.NotNil(t, p)
	assert.Contains(t, p.Text(), "3 packages")

	// The cross-reference grid is forced to 3 columns
	rows := doc.FindElements("//table/tbody/tr")
	require.Len(t, rows, 1)
	cells := rows[0].FindElements("td")
	assert.Len(t, cells, 3)

	link := doc.FindElement("//table//a[@href='#hdf5']")
	require.NotNil(t, link)
	assert.Equal(t, "hdf5", link.Text())
	assert.Equal(t, "reference internal", link.SelectAttrValue("class", ""))
}

func TestHTMLAlternatingRowClasses(t *testing.T) {
	pkgs := make([]*catalog.Package, 7)
	names := make([]string, 7)
	for i := range pkgs {
		names[i] = fmt.Sprintf("pkg%d", i)
		pkgs[i] = &catalog.Package{Name: names[i]}
	}
	cat := catalog.NewMemoryCatalog(pkgs...)

	doc := parseFragment(t, renderHTML(t, names, cat))

	rows := doc.FindElements("//table/tbody/tr")
	require.Len(t, rows, 3)
	assert.Equal(t, "row-odd", rows[0].SelectAttrValue("class", ""))
	assert.Equal(t, "row-even", rows[1].SelectAttrValue("class", ""))
	assert.Equal(t, "row-odd", rows[2].SelectAttrValue("class", ""))

	// 7 items in a 3x3 grid leave two padding cells, emitted empty
	// rather than as dangling links
	empty := 0
	for _, row := range rows {
		for _, td := range row.FindElements("td") {
			if len(td.ChildElements()) == 0 {
				empty++
			}
		}
	}
	assert.Equal(t, 2, empty)
}

func TestHTMLPackageSections(t *testing.T) {
	out := renderHTML(t, []string{"hdf5", "R", "zlib"}, testCatalog())
	doc := parseFragment(t, out)

	for _, name := range []string{"hdf5", "R", "zlib"} {
		div := doc.FindElement(fmt.Sprintf("//div[@id='%s']", name))
		require.NotNil(t, div, name)
		assert.Equal(t, "section", div.SelectAttrValue("class", ""))

		h1 := div.FindElement("h1")
		require.NotNil(t, h1, name)
		assert.Equal(t, name, h1.Text())
	}

	// Section anchors start at id2; the surrounding page owns id1
	assert.Nil(t, doc.FindElement("//span[@id='id1']"))
	assert.NotNil(t, doc.FindElement("//span[@id='id2']"))
	assert.NotNil(t, doc.FindElement("//span[@id='id4']"))
}

func TestHTMLDependencyCrossReferences(t *testing.T) {
	out := renderHTML(t, []string{"hdf5", "R", "zlib"}, testCatalog())
	doc := parseFragment(t, out)

	hdf5 := doc.FindElement("//div[@id='hdf5']")
	require.NotNil(t, hdf5)

	// zlib is in the filtered result: internal link. szip is not:
	// plain text.
	assert.NotNil(t, hdf5.FindElement(".//a[@href='#zlib']"))
	assert.Nil(t, hdf5.FindElement(".//a[@href='#szip']"))
	assert.Contains(t, out, "szip")
}

func TestHTMLSectionContents(t *testing.T) {
	out := renderHTML(t, []string{"hdf5", "R", "zlib"}, testCatalog())

	assert.Contains(t, out, `<a class="reference external" href="https://www.hdfgroup.org">https://www.hdfgroup.org</a>`)
	assert.Contains(t, out, `<a class="reference external" href="https://example.com/pkgs/hdf5.yaml">hdf5</a>`)
	assert.Contains(t, out, "<dt>Versions:</dt>")
	assert.Contains(t, out, "1.10.1, 1.8.19")
	assert.Contains(t, out, "<dt>Build Dependencies:</dt>")
	assert.Contains(t, out, "<dt>Description:</dt>")
	assert.Contains(t, out, `<hr class="docutils"/>`)
}

func TestHTMLOmitsEmptySections(t *testing.T) {
	cat := catalog.NewMemoryCatalog(&catalog.Package{
		Name:        "minimal",
		Homepage:    "https://example.org",
		Description: "Bare-bones package.",
	})

	out := renderHTML(t, []string{"minimal"}, cat)

	assert.NotContains(t, out, "<dt>Versions:</dt>")
	assert.NotContains(t, out, "Dependencies:</dt>")
	assert.Contains(t, out, "<dt>Homepage:</dt>")
	assert.Contains(t, out, "<dt>Package source:</dt>")
	assert.Contains(t, out, "<dt>Description:</dt>")
}

func TestHTMLEscapesText(t *testing.T) {
	cat := catalog.NewMemoryCatalog(&catalog.Package{
		Name:        "esc",
		Homepage:    "https://example.org",
		Description: "Uses <templates> & \"quotes\".",
	})

	out := renderHTML(t, []string{"esc"}, cat)

	assert.Contains(t, out, "Uses &lt;templates&gt; &amp; &#34;quotes&#34;.")
	assert.NotContains(t, out, "<templates>")
}

func TestHTMLEmptyResult(t *testing.T) {
	out := renderHTML(t, nil, testCatalog())
	doc := parseFragment(t, out)

	p := doc.FindElement("/root/p")
	require.NotNil(t, p)
	assert.Contains(t, p.Text(), "0 packages")
	assert.Empty(t, doc.FindElements("//div"))
	assert.Empty(t, doc.FindElements("//table/tbody/tr"))
}
