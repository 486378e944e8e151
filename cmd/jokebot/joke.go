package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jokebot/internal/application/port/input"
	"jokebot/internal/di"
	"jokebot/internal/domain/entity"
)

var (
	jokeCategory string
	jokeLanguage string
	jokeSource   string
)

var jokeCmd = &cobra.Command{
	Use:   "joke",
	Short: "Print one joke and exit",
	Long: `Fetches a single joke from the configured source and prints it to
stdout, suitable for scripting:

  jokebot joke --category chuck
  jokebot joke --source openai --language de`,
	Args: cobra.NoArgs,
	RunE: runJoke,
}

func init() {
	jokeCmd.Flags().StringVarP(&jokeCategory, "category", "c", "", "Joke category (neutral, chuck, all)")
	jokeCmd.Flags().StringVarP(&jokeLanguage, "language", "l", "", "Joke language (en, de, es)")
	jokeCmd.Flags().StringVarP(&jokeSource, "source", "s", "", "Joke source (static, openai, webscrape, auto)")
}

func runJoke(cmd *cobra.Command, args []string) error {
	envService, err := loadEnv()
	if err != nil {
		return err
	}

	cfg, err := containerConfig(envService, "joke")
	if err != nil {
		return err
	}

	// Flags override the environment defaults.
	if jokeCategory != "" {
		category, err := entity.ParseCategory(jokeCategory)
		if err != nil {
			return err
		}
		cfg.Category = category
	}
	if jokeLanguage != "" {
		language, err := entity.ParseLanguage(jokeLanguage)
		if err != nil {
			return err
		}
		cfg.Language = language
	}
	if jokeSource != "" {
		source, err := entity.ParseSourceName(jokeSource)
		if err != nil {
			return err
		}
		cfg.Source = source
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	joke, err := container.Jokes.Tell(ctx, input.JokeRequest{
		Category: cfg.Category,
		Language: cfg.Language,
		Source:   cfg.Source,
	})
	if err != nil {
		return err
	}

	fmt.Println(joke.Text)
	return nil
}
