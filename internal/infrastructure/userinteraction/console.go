package userinteraction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
)

var _ output.UserInteractionPort = (*ConsoleUserInteraction)(nil)

const (
	bannerRule   = "============================================================"
	menuRuleThin = "--------------------------------------------------"
)

type ConsoleUserInteraction struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsoleUserInteraction() *ConsoleUserInteraction {
	return NewConsoleUserInteractionWith(os.Stdin, os.Stdout)
}

// NewConsoleUserInteractionWith wires custom streams. For tests and for
// embedding the bot behind other transports.
func NewConsoleUserInteractionWith(in io.Reader, out io.Writer) *ConsoleUserInteraction {
	return &ConsoleUserInteraction{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (u *ConsoleUserInteraction) AskChoice(ctx context.Context) (string, error) {
	fmt.Fprint(u.out, "User Input: ")
	answer, err := u.readLine()
	if err != nil {
		return "", err
	}
	return strings.ToLower(answer), nil
}

func (u *ConsoleUserInteraction) AskCategory(ctx context.Context, categories []entity.Category) (string, error) {
	options := make([]string, 0, len(categories))
	for i, c := range categories {
		options = append(options, fmt.Sprintf("%d=%s", i, c))
	}
	fmt.Fprintf(u.out, "\nSelect category [%s]: \n", strings.Join(options, ", "))
	fmt.Fprint(u.out, "> ")
	return u.readLine()
}

func (u *ConsoleUserInteraction) ShowWelcome(ctx context.Context) {
	banner := color.New(color.FgMagenta, color.Bold)
	banner.Fprintf(u.out, "🎉%s🎉\n", bannerRule)
	fmt.Fprintln(u.out, "    WELCOME TO THE JOKE BOT!")
	fmt.Fprintln(u.out, "    Interactive joke sessions driven by a state graph")
	fmt.Fprintln(u.out, bannerRule)
	fmt.Fprintln(u.out)
	banner.Fprintf(u.out, "🚀%s🚀\n", bannerRule)
	fmt.Fprintln(u.out, "    STARTING JOKE BOT SESSION...")
	fmt.Fprintln(u.out, bannerRule)
}

func (u *ConsoleUserInteraction) ShowMenu(ctx context.Context, category entity.Category, jokesHeard int) {
	header := color.New(color.FgCyan, color.Bold)

	fmt.Fprintf(u.out, "\n%s\n", bannerRule)
	header.Fprintf(u.out, "🎭 Menu | Category: %s | Jokes: %d\n", strings.ToUpper(category.String()), jokesHeard)
	fmt.Fprintln(u.out, menuRuleThin)
	fmt.Fprintln(u.out, "Pick an option:")
	fmt.Fprintln(u.out, "[n] 🎭 Next Joke  [c] 📂 Change Category  [q] 🚪 Quit")
}

func (u *ConsoleUserInteraction) ShowJoke(ctx context.Context, joke entity.Joke) {
	green := color.New(color.FgGreen)
	green.Fprintf(u.out, "\n😂 %s\n", joke.Text)
}

func (u *ConsoleUserInteraction) ShowMessage(ctx context.Context, message string) {
	fmt.Fprintln(u.out, message)
}

func (u *ConsoleUserInteraction) ShowGoodbye(ctx context.Context, summary entity.SessionSummary) {
	banner := color.New(color.FgYellow, color.Bold)

	banner.Fprintf(u.out, "\n🚪%s🚪\n", bannerRule)
	fmt.Fprintln(u.out, "    GOODBYE!")
	fmt.Fprintln(u.out, bannerRule)
	banner.Fprintf(u.out, "\n🎊%s🎊\n", bannerRule)
	fmt.Fprintln(u.out, "    SESSION COMPLETE!")
	fmt.Fprintln(u.out, bannerRule)
	fmt.Fprintf(u.out, "    📈 You enjoyed %d jokes during this session!\n", summary.JokesHeard)
	fmt.Fprintf(u.out, "    📂 Final category: %s\n", strings.ToUpper(summary.FinalCategory.String()))
	fmt.Fprintln(u.out, "    🙏 Thanks for using the Joke Bot!")
	fmt.Fprintln(u.out, bannerRule)
}

// readLine reads one line and trims it. A final unterminated line before
// EOF still counts; a bare EOF surfaces as an error so the session can
// treat it as a quit.
func (u *ConsoleUserInteraction) readLine() (string, error) {
	line, err := u.reader.ReadString('\n')
	if err != nil {
		trimmed := strings.TrimSpace(line)
		if errors.Is(err, io.EOF) && trimmed != "" {
			return trimmed, nil
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
