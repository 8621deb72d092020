package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// movieFlags holds the add and edit flags of one command instance
type movieFlags struct {
	title       string
	description string
	ageLimit    int
}

// newListCmd prints the catalog
func newListCmd() *cobra.Command {
	var ageLimit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies, optionally only those with an age limit of at least N",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, ageLimit)
		},
	}
	cmd.Flags().IntVar(&ageLimit, "age-limit", 0, "Only show movies with an age limit of at least N (0 = all)")
	return cmd
}

// newAddCmd submits a new movie
func newAddCmd() *cobra.Command {
	var f movieFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie (age limit defaults to 16)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&f.description, "description", "", "Description (required)")
	cmd.Flags().IntVar(&f.ageLimit, "age-limit", entity.DefaultAgeLimit, "Age limit")
	requireFlags(cmd, "title", "description")
	return cmd
}

// requireFlags marks flags defined on cmd as required. An unknown name is a programming error.
func requireFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("mark flag %q required: %v", name, err))
		}
	}
}

// newEditCmd replaces a movie with its current fields merged with the given flags
func newEditCmd() *cobra.Command {
	var f movieFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.title, "title", "", "New title")
	cmd.Flags().StringVar(&f.description, "description", "", "New description")
	cmd.Flags().IntVar(&f.ageLimit, "age-limit", 0, "New age limit")
	return cmd
}

// newDeleteCmd removes a movie
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args[0])
		},
	}
}

func runList(cmd *cobra.Command, ageLimit int) error {
	session := newSession()
	defer session.Close()

	if err := session.SetFilter(ageLimit); err != nil {
		return err
	}
	if err := session.Init(cmd.Context()); err != nil {
		return err
	}

	printMovies(cmd.OutOrStdout(), session.Visible())
	return nil
}

func runAdd(cmd *cobra.Command, f movieFlags) error {
	session := newSession()
	defer session.Close()

	draft := request.MovieRequest{
		Title:       f.title,
		Description: f.description,
	}
	if cmd.Flags().Changed("age-limit") {
		ageLimit := f.ageLimit
		draft.AgeLimit = &ageLimit
	}

	movie, err := session.Add(cmd.Context(), draft)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", movie.ID)
	return nil
}

func runEdit(cmd *cobra.Command, id string, f movieFlags) error {
	var patch request.MoviePatch
	if cmd.Flags().Changed("title") {
		patch.Title = &f.title
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &f.description
	}
	if cmd.Flags().Changed("age-limit") {
		patch.AgeLimit = &f.ageLimit
	}
	if patch.IsEmpty() {
		return errors.New("nothing to change: pass --title, --description or --age-limit")
	}
	if err := utils.Validate(patch); err != nil {
		return err
	}

	session := newSession()
	defer session.Close()

	current, err := session.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	updated, err := session.Update(cmd.Context(), id, request.NewMovieRequest(patch.Apply(*current)))
	if updated == nil {
		return err
	}
	if err != nil {
		// The write went through; only the refresh after it failed.
		logger.Warn("Movie updated but refresh failed", zap.String("movie_id", id), zap.Error(err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", id)
	printMovies(cmd.OutOrStdout(), []entity.Movie{*updated})
	return nil
}

func runDelete(cmd *cobra.Command, id string) error {
	session := newSession()
	defer session.Close()

	if err := session.Remove(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

func printMovies(out io.Writer, movies []entity.Movie) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAGE LIMIT\tDESCRIPTION")
	for _, m := range movies {
		fmt.Fprintf(w, "%s\t%s\t%d+\t%s\n", m.ID, m.Title, m.AgeLimit, m.Description)
	}
	w.Flush()
}
