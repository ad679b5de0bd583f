package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultURL is the public arXiv category taxonomy page.
const DefaultURL = "https://arxiv.org/category_taxonomy"

// ErrNoEntries is returned when the taxonomy page parsed but contained no categories.
var ErrNoEntries = errors.New("no categories found on taxonomy page")

// reCategoryHeading matches headings like "math.AG (Algebraic Geometry)".
var reCategoryHeading = regexp.MustCompile(`([a-z\-]+\.[A-Z\-a-z]{2,})\s*\((.+)\)`)

// sectionGroups maps a substring of a section title to its group, checked in order.
var sectionGroups = []struct {
	marker string
	group  string
}{
	{"Mathematics", "math"},
	{"Computer Science", "cs"},
	{"Physics", "physics"},
	{"Biology", "bio"},
	{"Finance", "fin"},
	{"Statistics", "stat"},
	{"Economics", "econ"},
	{"Electrical", "eess"},
}

// HTTPFetcher scrapes the taxonomy from the arXiv category page.
type HTTPFetcher struct {
	URL       string
	Client    *http.Client
	UserAgent string
}

// NewHTTPFetcher returns a fetcher for url. An empty url means DefaultURL.
func NewHTTPFetcher(url string) *HTTPFetcher {
	if url == "" {
		url = DefaultURL
	}
	return &HTTPFetcher{
		URL:       url,
		Client:    &http.Client{},
		UserAgent: "arxivgraph/1.0",
	}
}

// Fetch downloads and parses the taxonomy page. The deadline comes from ctx.
func (f *HTTPFetcher) Fetch(ctx context.Context) (*Taxonomy, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching taxonomy page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching taxonomy page: unexpected status %d", resp.StatusCode)
	}

	t, err := ParseTaxonomyHTML(resp.Body)
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, ErrNoEntries
	}
	return t, nil
}

// ParseTaxonomyHTML extracts entries from the taxonomy page markup.
//
// Each "h2.accordion-head" starts a section whose title decides the group.
// The section's categories are the h4 headings of the following
// "div.accordion-body"; a category's description is the first paragraph of
// the column next to the one holding its heading.
func ParseTaxonomyHTML(r io.Reader) (*Taxonomy, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing taxonomy page: %w", err)
	}

	t := New()
	doc.Find("h2.accordion-head").Each(func(_ int, section *goquery.Selection) {
		group := groupForSection(strings.TrimSpace(section.Text()))

		body := section.NextAllFiltered("div.accordion-body").First()
		if body.Length() == 0 {
			return
		}

		body.Find("h4").Each(func(_ int, h4 *goquery.Selection) {
			m := reCategoryHeading.FindStringSubmatch(separatedText(h4))
			if m == nil {
				return
			}
			t.Add(Entry{
				Code:        strings.TrimSpace(m[1]),
				Name:        strings.TrimSpace(m[2]),
				Description: descriptionFor(h4),
				Group:       group,
			})
		})
	})

	return t, nil
}

func groupForSection(title string) string {
	for _, sg := range sectionGroups {
		if strings.Contains(title, sg.marker) {
			return sg.group
		}
	}
	return GroupOther
}

func descriptionFor(h4 *goquery.Selection) string {
	column := h4.Closest("div.column")
	if column.Length() == 0 {
		return ""
	}
	p := column.NextAllFiltered("div.column").First().Find("p").First()
	if p.Length() == 0 {
		return ""
	}
	return strings.Join(strings.Fields(p.Text()), " ")
}

// separatedText joins every non-blank text node under sel with single spaces.
func separatedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
