package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/services"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Manage CVs",
	Long:  `List, create, show and delete CVs without opening the dashboard.`,
}

var cvListCmd = &cobra.Command{
	Use:   "list",
	Short: "List CVs",
	Long: `List CVs in creation order. With --query only CVs whose title or
owner name contains the query are shown, ignoring case.`,
	Args: cobra.NoArgs,
	RunE: runCVList,
}

var cvNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a CV",
	Args:  cobra.NoArgs,
	RunE:  runCVNew,
}

var cvShowCmd = &cobra.Command{
	Use:   "show [cv-id]",
	Short: "Show a CV",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVShow,
}

var cvRemoveCmd = &cobra.Command{
	Use:     "rm [cv-id]...",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete CVs",
	Long: `Delete one or more CVs. Each delete waits out the configured grace
interval before the store is changed. Interrupting the command during
the interval keeps the CVs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCVRemove,
}

var (
	cvQuery string
	cvTitle string
	cvName  string
)

func init() {
	cvListCmd.Flags().StringVarP(&cvQuery, "query", "q", "", "only show CVs matching the query")
	cvNewCmd.Flags().StringVar(&cvTitle, "title", "", "CV title")
	cvNewCmd.Flags().StringVar(&cvName, "name", "", "owner's full name")
	_ = cvNewCmd.MarkFlagRequired("title")

	cvCmd.AddCommand(cvListCmd)
	cvCmd.AddCommand(cvNewCmd)
	cvCmd.AddCommand(cvShowCmd)
	cvCmd.AddCommand(cvRemoveCmd)
	rootCmd.AddCommand(cvCmd)
}

func runCVList(cmd *cobra.Command, _ []string) error {
	if cvService == nil {
		return errCVServiceMissing
	}

	cvs, err := cvService.Search(cmd.Context(), cvQuery)
	if err != nil {
		return fmt.Errorf("failed to list cvs: %w", err)
	}

	if len(cvs) == 0 {
		if cvQuery == "" {
			cmd.Println("You haven't created any CVs yet. Run 'cvdash cv new --title <title>' to get started.")
		} else {
			cmd.Println("No CVs match your search criteria.")
		}
		return nil
	}

	for i := range cvs {
		cmd.Printf("  %s\n", cvs[i].ID)
		cmd.Printf("    Title: %s\n", cvs[i].DisplayTitle())
		if cvs[i].PersonalInfo.FullName != "" {
			cmd.Printf("    Name: %s\n", cvs[i].PersonalInfo.FullName)
		}
		cmd.Printf("    Last modified: %s\n", domain.FormatLastModified(cvs[i].LastModified))
		cmd.Println()
	}

	cmd.Printf("Total: %d CVs\n", len(cvs))
	return nil
}

func runCVNew(cmd *cobra.Command, _ []string) error {
	if cvService == nil {
		return errCVServiceMissing
	}

	cv, err := cvService.Create(cmd.Context(), cvTitle, cvName)
	if err != nil {
		return fmt.Errorf("failed to create cv: %w", err)
	}

	cmd.Printf("Created CV %s\n", cv.ID)
	return nil
}

func runCVShow(cmd *cobra.Command, args []string) error {
	if cvService == nil {
		return errCVServiceMissing
	}

	cv, err := cvService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get cv: %w", err)
	}

	cmd.Printf("CV: %s\n\n", cv.ID)
	cmd.Printf("  Title:         %s\n", cv.Title)
	cmd.Printf("  Name:          %s\n", cv.PersonalInfo.FullName)
	if cv.PersonalInfo.Email != "" {
		cmd.Printf("  Email:         %s\n", cv.PersonalInfo.Email)
	}
	if cv.PersonalInfo.Phone != "" {
		cmd.Printf("  Phone:         %s\n", cv.PersonalInfo.Phone)
	}
	cmd.Printf("  Created:       %s\n", domain.FormatLastModified(cv.CreatedAt))
	cmd.Printf("  Last modified: %s\n", domain.FormatLastModified(cv.LastModified))
	return nil
}

func runCVRemove(cmd *cobra.Command, args []string) error {
	if cvService == nil {
		return errCVServiceMissing
	}
	ctx := cmd.Context()

	ids := make([]string, 0, len(args))
	for _, id := range args {
		if _, err := cvService.Get(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("cv %s: %w", id, err)
			}
			return fmt.Errorf("failed to get cv: %w", err)
		}
		ids = append(ids, id)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []error
	)
	coord := services.NewDeletionCoordinator(cvService, graceInterval(),
		services.WithCommitHook(func(id string, err error) {
			defer wg.Done()
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("cv %s: %w", id, err))
				mu.Unlock()
				return
			}
			cmd.Printf("Removed %s\n", id)
		}))
	defer coord.Close()

	for _, id := range ids {
		wg.Add(1)
		if !coord.RequestDelete(ctx, id) {
			// Repeated on the command line.
			wg.Done()
		}
	}

	if err := waitOrCancel(ctx, &wg); err != nil {
		dropped := len(coord.Pending())
		coord.Close()
		cmd.Printf("Cancelled; %d delete(s) dropped\n", dropped)
		return err
	}
	return errors.Join(failures...)
}

// graceInterval reads the configured interval, falling back to the default.
func graceInterval() time.Duration {
	if settingsService == nil {
		return domain.DefaultGraceInterval
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.DefaultGraceInterval
	}
	return settings.GraceInterval
}

// waitOrCancel waits for wg or returns ctx.Err() if ctx ends first.
func waitOrCancel(ctx context.Context, wg *sync.WaitGroup) error {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
