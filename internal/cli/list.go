package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/config"
	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/posts"
	"github.com/rshade/postview/internal/tui"
)

// Output formats of the list command.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// ErrInvalidOutputFormat is returned for an unknown --output value.
var ErrInvalidOutputFormat = errors.New("invalid output format")

type listOptions struct {
	page   int
	sort   string
	bodies bool
	output string
}

// listResult is the JSON document printed by list --output json.
type listResult struct {
	Posts      []posts.Post              `json:"posts"`
	Pagination pagination.PaginationMeta `json:"pagination"`
}

// NewListCmd creates the list command, which prints one page without the interactive browser.
func NewListCmd(flags *globalFlags) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of posts",
		Long: `Fetches the collection once and prints a single sorted page.

A failed fetch is logged and an empty page is printed.`,
		Example: `  # First page, sorted by title
  postview list

  # Third page sorted by id, with bodies
  postview list --page 3 --sort id --bodies

  # Machine-readable output
  postview list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", pagination.DefaultPage, "page number (1-based)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort method: title or id (default from config)")
	cmd.Flags().BoolVar(&opts.bodies, "bodies", false, "include post bodies")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, flags *globalFlags, opts listOptions) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	if err := pagination.ValidatePage(opts.page); err != nil {
		return err
	}
	method := cfg.SortMethod()
	if opts.sort != "" {
		parsed, err := pagination.ParseSortMethod(opts.sort)
		if err != nil {
			return err
		}
		method = parsed
	}
	if opts.output != outputTable && opts.output != outputJSON {
		return fmt.Errorf("%w: %q (must be table or json)", ErrInvalidOutputFormat, opts.output)
	}

	all, err := newFetcher(cfg).FetchAll(ctx)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Msg("error fetching posts")
		all = nil
	}

	totalPages := 1
	if err == nil {
		totalPages = pagination.TotalPages(len(all))
	}
	rows := pagination.NewDefaultSorter().Derive(all, method, opts.page)
	meta := pagination.NewPaginationMeta(opts.page, totalPages, len(all))

	logger.Debug().Ctx(ctx).
		Int("page", opts.page).
		Str("sort", string(method)).
		Int("rows", len(rows)).
		Msg("list page derived")

	out := cmd.OutOrStdout()
	if opts.output == outputJSON {
		return writeJSON(out, rows, meta)
	}

	if tui.DetectOutputMode(flags.plain, flags.noColor) == tui.OutputModePlain {
		return tui.RenderPlainPage(out, rows, meta, opts.bodies)
	}
	return tui.RenderStyledPage(out, rows, meta, method, opts.bodies, tui.TerminalWidth())
}

func writeJSON(w io.Writer, rows []posts.Post, meta pagination.PaginationMeta) error {
	if rows == nil {
		rows = []posts.Post{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listResult{Posts: rows, Pagination: meta}); err != nil {
		return fmt.Errorf("encoding posts: %w", err)
	}
	return nil
}
