// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/loadsmith"
	"github.com/poiesic/loadsmith/core"
	"github.com/poiesic/loadsmith/manifest"
	"github.com/poiesic/loadsmith/recommend"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "loadsmith",
		Usage: "Build recommendation engine for Guardian loadouts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "recommend",
				Usage:     "Recommend builds for a free-text query",
				ArgsUsage: "<query>",
				Action:    recommendCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "manifest",
						Aliases:  []string{"m"},
						Usage:    "Path to item catalog manifest JSON",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory (in-memory if omitted)",
					},
					&cli.StringFlag{
						Name:  "class",
						Usage: "Restrict results to a class (titan, hunter, warlock)",
					},
					&cli.StringFlag{
						Name:  "element",
						Usage: "Restrict results to an element (arc, solar, void, stasis, strand)",
					},
					&cli.IntFlag{
						Name:  "max-builds",
						Usage: "Maximum number of builds to return",
						Value: 5,
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "Persist the top build to the database",
					},
				},
			},
			{
				Name:   "index",
				Usage:  "Build a catalog index from a manifest and report statistics",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "manifest",
						Aliases:  []string{"m"},
						Usage:    "Path to item catalog manifest JSON",
						Required: true,
					},
				},
			},
			{
				Name:  "builds",
				Usage: "Manage saved builds",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List the most recently saved builds",
						Action: listBuildsCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to BadgerDB database directory",
								Required: true,
							},
							&cli.IntFlag{
								Name:  "limit",
								Usage: "Maximum number of builds to list",
								Value: 10,
							},
						},
					},
					{
						Name:      "show",
						Usage:     "Show a saved build",
						ArgsUsage: "<id>",
						Action:    showBuildCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to BadgerDB database directory",
								Required: true,
							},
						},
					},
					{
						Name:      "delete",
						Usage:     "Delete a saved build",
						ArgsUsage: "<id>",
						Action:    deleteBuildCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to BadgerDB database directory",
								Required: true,
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	queryText := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if queryText == "" {
		return fmt.Errorf("query text is required")
	}

	records, version, err := manifest.Load(c.String("manifest"))
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	lib, err := loadsmith.NewLibrary(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer lib.Close()

	recommender, err := lib.NewRecommender(recommend.WithMaxBuilds(c.Int("max-builds")))
	if err != nil {
		return fmt.Errorf("failed to create recommender: %w", err)
	}

	opts := &recommend.QueryOptions{}
	if opts.Class, err = parseClass(c.String("class")); err != nil {
		return err
	}
	if opts.Element, err = parseElement(c.String("element")); err != nil {
		return err
	}

	result, err := recommender.Recommend(ctx, queryText, records, version, opts)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	printResult(result)

	if c.Bool("save") && len(result.Builds) > 0 {
		saved := &core.SavedBuild{
			Query: queryText,
			Build: result.Builds[0],
		}
		if _, err := lib.BuildRepository().AddBuilds(ctx, saved); err != nil {
			return fmt.Errorf("failed to save build: %w", err)
		}
		fmt.Printf("\nSaved build %d: %s\n", saved.Id, saved.Build.Name)
	}

	return nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	records, version, err := manifest.Load(c.String("manifest"))
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	lib, err := loadsmith.NewLibrary("")
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer lib.Close()

	index, err := lib.Cache().GetOrBuild(ctx, records, version)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Printf("Version:        %s\n", index.Version())
	fmt.Printf("Items indexed:  %d\n", index.Len())
	fmt.Printf("Build-relevant: %d\n", len(index.BuildRelevant()))
	fmt.Printf("Exotics:        %d\n", len(index.Exotics()))
	fmt.Printf("Mods:           %d\n", len(index.Mods()))

	return nil
}

func listBuildsCommand(c *cli.Context) error {
	ctx := context.Background()

	lib, err := loadsmith.NewLibrary(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer lib.Close()

	builds, err := lib.BuildRepository().GetRecentBuilds(ctx, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list builds: %w", err)
	}

	if len(builds) == 0 {
		fmt.Println("No saved builds.")
		return nil
	}

	for _, build := range builds {
		fmt.Printf("%6d  %-40s  score %3d  %s\n",
			build.Id, build.Build.Name, build.Build.Score,
			build.InsertedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

func showBuildCommand(c *cli.Context) error {
	ctx := context.Background()

	id, err := parseBuildID(c.Args().First())
	if err != nil {
		return err
	}

	lib, err := loadsmith.NewLibrary(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer lib.Close()

	build, err := lib.BuildRepository().GetBuild(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load build: %w", err)
	}

	fmt.Printf("Query: %s\n\n", build.Query)
	printBuild(&build.Build)

	return nil
}

func deleteBuildCommand(c *cli.Context) error {
	ctx := context.Background()

	id, err := parseBuildID(c.Args().First())
	if err != nil {
		return err
	}

	lib, err := loadsmith.NewLibrary(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open library: %w", err)
	}
	defer lib.Close()

	if err := lib.BuildRepository().DeleteBuilds(ctx, id); err != nil {
		return fmt.Errorf("failed to delete build: %w", err)
	}

	fmt.Printf("Deleted build %d.\n", id)
	return nil
}

func printResult(result *recommend.Result) {
	fmt.Printf("Parsed query: class=%s element=%s activity=%q playstyle=%q confidence=%.2f\n\n",
		result.Query.Class, result.Query.Element,
		result.Query.Activity, result.Query.Playstyle, result.Query.Confidence)

	if len(result.Builds) == 0 {
		fmt.Println("No builds matched the query.")
		if len(result.FallbackItems) > 0 {
			fmt.Println("\nClosest items:")
			for _, hit := range result.FallbackItems {
				fmt.Printf("  %-40s  score %d\n", hit.Item.Name, hit.Score)
			}
		}
		for _, suggestion := range result.Suggestions {
			fmt.Printf("Hint: %s\n", suggestion)
		}
		return
	}

	for i := range result.Builds {
		if i > 0 {
			fmt.Println()
		}
		printBuild(&result.Builds[i])
	}
}

func printBuild(build *core.CandidateBuild) {
	fmt.Printf("%s (score %d)\n", build.Name, build.Score)
	fmt.Printf("  %s\n", build.Description)
	fmt.Printf("  Class: %s  Element: %s  Focus: %s\n", build.Class, build.Element, build.Focus)
	fmt.Printf("  Super: %s\n", build.Guide.Super)
	fmt.Printf("  Weapons: %s / %s / %s\n",
		build.Guide.Weapons.Kinetic, build.Guide.Weapons.Energy, build.Guide.Weapons.Power)
	fmt.Printf("  Aspects: %s\n", strings.Join(build.Guide.Aspects, ", "))
	fmt.Printf("  Fragments: %s\n", strings.Join(build.Guide.Fragments, ", "))
	fmt.Printf("  Essential mods: %s\n", strings.Join(build.Guide.Mods.Essential, ", "))
	fmt.Printf("  Stat priority: %s\n", strings.Join(build.Guide.StatPriority, " > "))
	for _, tip := range build.Guide.Tips {
		fmt.Printf("  Tip: %s\n", tip)
	}
}

func parseBuildID(arg string) (core.ID, error) {
	if arg == "" {
		return 0, fmt.Errorf("build id is required")
	}
	var id uint64
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid build id %q", arg)
	}
	return core.ID(id), nil
}

func parseClass(value string) (core.GuardianClass, error) {
	switch strings.ToLower(value) {
	case "":
		return core.ClassAny, nil
	case "titan":
		return core.ClassTitan, nil
	case "hunter":
		return core.ClassHunter, nil
	case "warlock":
		return core.ClassWarlock, nil
	default:
		return core.ClassAny, fmt.Errorf("invalid class %q: must be one of titan, hunter, warlock", value)
	}
}

func parseElement(value string) (core.Element, error) {
	switch strings.ToLower(value) {
	case "":
		return core.ElementNone, nil
	case "kinetic":
		return core.ElementKinetic, nil
	case "arc":
		return core.ElementArc, nil
	case "solar":
		return core.ElementSolar, nil
	case "void":
		return core.ElementVoid, nil
	case "stasis":
		return core.ElementStasis, nil
	case "strand":
		return core.ElementStrand, nil
	default:
		return core.ElementNone, fmt.Errorf("invalid element %q: must be one of kinetic, arc, solar, void, stasis, strand", value)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
