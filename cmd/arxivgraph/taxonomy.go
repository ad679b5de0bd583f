package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkrishelie/arxiv-graph-viz/internal/taxonomy"
)

var taxonomyOffline bool

func init() {
	taxonomyCmd.Flags().BoolVar(&taxonomyOffline, "offline", false, "Skip the live page and use the cache or built-in taxonomy")
	rootCmd.AddCommand(taxonomyCmd)
}

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Resolve and print the subject taxonomy",
	Long: `Resolve the arXiv subject taxonomy the way a build does and print it.

The live taxonomy page is preferred. If it yields fewer categories than the
cache, the cache is kept; if both are empty, the built-in mathematics
taxonomy is used. A live result that wins replaces the cache.`,
	Args: cobra.NoArgs,
	RunE: runTaxonomy,
}

// TaxonomyEntry is one row of the taxonomy command output.
type TaxonomyEntry struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description,omitempty"`
}

// TaxonomyResponse is the response for the taxonomy command.
type TaxonomyResponse struct {
	Source         string          `json:"source"`
	Count          int             `json:"count"`
	CacheRefreshed bool            `json:"cache_refreshed"`
	Entries        []TaxonomyEntry `json:"entries"`
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)
	log := mustNewLogger(cfg)
	defer log.Sync()

	out := newResolver(root, cfg, log, taxonomyOffline).Resolve(cmd.Context())
	resp, err := newTaxonomyResponse(out)
	if err != nil {
		exitWithError(ExitDataError, "no taxonomy source produced any entries")
	}

	if humanOutput {
		fmt.Printf("Taxonomy from %s: %d categories", resp.Source, resp.Count)
		if resp.CacheRefreshed {
			fmt.Print(" (cache refreshed)")
		}
		fmt.Println()
		for _, e := range resp.Entries {
			fmt.Printf("  %-16s %-8s %s\n", e.Code, e.Group, truncate(e.Name, 50))
		}
	} else {
		outputJSON(resp)
	}
	return nil
}

// newTaxonomyResponse flattens a resolution outcome for output. An empty
// taxonomy yields taxonomy.ErrEmptyTaxonomy and no response.
func newTaxonomyResponse(out taxonomy.Outcome) (TaxonomyResponse, error) {
	if out.Taxonomy.Len() == 0 {
		return TaxonomyResponse{}, taxonomy.ErrEmptyTaxonomy
	}

	resp := TaxonomyResponse{
		Source:         out.Source,
		Count:          out.Taxonomy.Len(),
		CacheRefreshed: out.CacheRefreshed,
		Entries:        make([]TaxonomyEntry, 0, out.Taxonomy.Len()),
	}
	for _, e := range out.Taxonomy.Entries() {
		resp.Entries = append(resp.Entries, TaxonomyEntry{
			Code:        e.Code,
			Name:        e.Name,
			Group:       e.Group,
			Description: e.Description,
		})
	}
	return resp, nil
}
