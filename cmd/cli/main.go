package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Rejzi-dich/RytonStore/internal/config"
	"github.com/Rejzi-dich/RytonStore/pkg/client"
)

var (
	searchQuery string
	outputJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "rystore",
	Short: "RytonStore catalog tool",
	Long: `A CLI tool for browsing and maintaining the RytonStore package catalog.

The catalog lists Ryton packages backed by GitHub repositories; this tool
talks to a running RytonStore server.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog packages",
	Long:  `Display the package catalog, optionally filtered by a search query.`,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one package",
	Long:  `Display a single package with its latest GitHub metadata and reviews.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show tag usage",
	Long:  `Display how many packages carry each catalog tag.`,
	RunE:  runCategories,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh-all",
	Short: "Refresh every package from GitHub",
	Long:  `Re-fetch GitHub metadata for every catalog entry and report how many changed.`,
	RunE:  runRefreshAll,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	listCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(refreshCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getClient() (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return client.NewClient(cfg.APIEndpoint), nil
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	packages, err := c.ListPackages(searchQuery)
	if err != nil {
		return fmt.Errorf("failed to list packages: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(packages)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Owner", "Stars", "Language", "Version"})
	for i, pkg := range packages {
		table.Append([]string{
			strconv.Itoa(i),
			pkg.Name,
			pkg.Owner.Login,
			strconv.Itoa(pkg.Stars),
			pkg.Language,
			pkg.Version,
		})
	}
	table.Render()

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("package id must be an integer: %w", err)
	}

	c, err := getClient()
	if err != nil {
		return err
	}

	pkg, reviews, err := c.GetPackage(index)
	if err != nil {
		return fmt.Errorf("failed to get package: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"package": pkg,
			"reviews": reviews,
		})
	}

	fmt.Printf("\n%s (%s)\n", pkg.Name, pkg.GitHubURL)
	if pkg.Description != "" {
		fmt.Println(pkg.Description)
	}
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Owner", pkg.Owner.Login})
	table.Append([]string{"Stars", strconv.Itoa(pkg.Stars)})
	table.Append([]string{"Forks", strconv.Itoa(pkg.Forks)})
	table.Append([]string{"Watchers", strconv.Itoa(pkg.Watchers)})
	table.Append([]string{"Language", pkg.Language})
	table.Append([]string{"Open Issues", strconv.Itoa(pkg.OpenIssues)})
	table.Append([]string{"Version", pkg.Version})
	table.Append([]string{"Published", pkg.PublishedAt})
	table.Append([]string{"Updated", pkg.UpdatedAt})
	table.Append([]string{"Submitted By", pkg.SubmittedBy})
	table.Render()

	if len(reviews) > 0 {
		fmt.Printf("\nReviews (%d):\n", len(reviews))
		for _, review := range reviews {
			fmt.Printf("  [%s] %s by %s (%s)\n", review.State, review.Title, review.Author, review.CreatedAt)
		}
	}

	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	tags, err := c.GetCategories()
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(tags)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Tag", "Packages"})
	for _, tag := range tags {
		table.Append([]string{tag.Tag, strconv.Itoa(tag.Count)})
	}
	table.Render()

	return nil
}

func runRefreshAll(cmd *cobra.Command, args []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	fmt.Println("Refreshing all packages from GitHub...")
	updated, err := c.RefreshAll()
	if err != nil {
		return fmt.Errorf("failed to refresh packages: %w", err)
	}

	fmt.Printf("Updated %d packages\n", updated)
	return nil
}
