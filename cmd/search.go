package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"doctor-directory/cmd/bootstrap"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/infrastructure/history"
	"doctor-directory/internal/service"

	"github.com/spf13/cobra"
)

type searchOptions struct {
	query        string
	search       string
	consultation string
	specialties  []string
	sortBy       string
}

func newSearchCommand() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter the directory once and print the results",
		Example: `  doctor-directory search --query "search=rao&sortBy=fees"
  doctor-directory search --consultation "Video Consult" --specialty Dentist --sort experience`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.query, "query", "", "starting filter query string, as found in a shared URL")
	flags.StringVar(&opts.search, "search", "", "doctor name to search for")
	flags.StringVar(&opts.consultation, "consultation", "", `consultation mode: "Video Consult" or "In Clinic"`)
	flags.StringArrayVar(&opts.specialties, "specialty", nil, "specialty to include, repeatable")
	flags.StringVar(&opts.sortBy, "sort", "", "sort order: fees or experience")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *searchOptions) error {
	app, err := bootstrap.New(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	location := "/"
	if query := strings.TrimPrefix(opts.query, "?"); query != "" {
		location += "?" + query
	}
	h := history.NewMemoryHistory(location)
	nav := service.NewNavigationService(h, app.Log)
	defer nav.Close()

	nav.Update(opts.patch(cmd))

	result, err := app.Directory.Search(cmd.Context(), nav.State())
	if err != nil {
		return err
	}

	printSearchResult(cmd.OutOrStdout(), result)
	return nil
}

// patch includes only the flags the user actually set.
func (o *searchOptions) patch(cmd *cobra.Command) entity.FilterPatch {
	var patch entity.FilterPatch
	flags := cmd.Flags()
	if flags.Changed("search") {
		patch.Search = &o.search
	}
	if flags.Changed("consultation") {
		ct := entity.ConsultationType(o.consultation)
		patch.ConsultationType = &ct
	}
	if flags.Changed("specialty") {
		patch.Specialties = &o.specialties
	}
	if flags.Changed("sort") {
		sortBy := entity.SortOption(o.sortBy)
		patch.SortBy = &sortBy
	}
	return patch
}

func printSearchResult(out io.Writer, result *dto.DoctorSearchResponse) {
	fmt.Fprintf(out, "Query: ?%s\n", result.Query)
	for _, applied := range result.AppliedFilters {
		fmt.Fprintf(out, "  %s\n", applied.Label)
	}
	fmt.Fprintf(out, "%d doctors\n\n", result.Total)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSPECIALTIES\tEXPERIENCE\tFEE\tMODES\tLOCATION")
	for _, d := range result.Doctors {
		fmt.Fprintf(tw, "%s\t%s\t%d yrs\t%s\t%s\t%s\n",
			d.Name,
			strings.Join(d.Specialties, ", "),
			d.ExperienceYears,
			d.Fee.String(),
			consultationModes(d.ConsultationModes),
			d.Location,
		)
	}
	tw.Flush()
}

func consultationModes(modes dto.ConsultationModesResponse) string {
	var parts []string
	if modes.VideoConsult {
		parts = append(parts, string(entity.ConsultationVideo))
	}
	if modes.InClinic {
		parts = append(parts, string(entity.ConsultationClinic))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
