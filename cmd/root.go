// Package cmd wires the CLI surface: one root command dispatching between
// one-shot prompt, interactive chat, and image generation.
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"grokcli/internal/chat"
	"grokcli/internal/config"
	"grokcli/internal/term"
	"grokcli/internal/xai"
)

var (
	chatMode  bool
	imageMode bool

	// opener is chosen once at startup; tests swap it out.
	opener term.URLOpener = term.BrowserOpener{}

	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "grokcli [prompt]...",
	Short: "Talk to Grok from the terminal",
	Long: `grokcli sends a prompt to the configured xAI chat endpoint and prints
the reply. Without flags the arguments are joined into a single one-shot
prompt; a prompt may also be piped on stdin.

Credentials live in ` + config.Path + ` and are created interactively on
first run.`,
	Example: `  grokcli what is the airspeed velocity of an unladen swallow
  grokcli -c
  grokcli -i a watercolor fox reading a newspaper`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&chatMode, "chat", "c", false, "start an interactive chat session (type '"+chat.Sentinel+"' to leave)")
	rootCmd.Flags().BoolVarP(&imageMode, "image", "i", false, "generate an image for the prompt and print its URL")
}

// Execute runs the root command. Errors print once, in red, to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel("error:"), err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !ensureConfig(os.Stdin, cmd.OutOrStdout()) {
		// Setup declined or failed; message already printed, exit clean.
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := xai.New(cfg)
	prompt := strings.TrimSpace(strings.Join(args, " "))

	switch {
	case chatMode:
		return chat.NewSession(client).Run(cmd.Context())

	case imageMode:
		if prompt == "" {
			return errors.New("image mode requires a prompt")
		}
		return runImage(cmd, client, prompt)

	default:
		if prompt == "" && stdinIsPiped() {
			prompt, err = readAllStdin()
			if err != nil {
				return err
			}
		}
		if prompt == "" {
			return cmd.Help()
		}
		reply, err := client.CompleteChat(cmd.Context(), prompt)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	}
}

func runImage(cmd *cobra.Command, client *xai.Client, prompt string) error {
	sp := term.NewSpinner()
	sp.Start()
	img, err := client.GenerateImage(cmd.Context(), prompt)
	sp.Stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if img.RevisedPrompt != "" {
		fmt.Fprintf(out, "rendered as: %s\n", img.RevisedPrompt)
	}
	fmt.Fprintln(out, img.URL)

	fmt.Fprint(out, "Open in browser? [y/N] ")
	if confirmed(bufio.NewReader(cmd.InOrStdin())) {
		if err := opener.Open(img.URL); err != nil {
			fmt.Fprintf(out, "could not open browser: %v\n", err)
		}
	}
	return nil
}

func confirmed(r *bufio.Reader) bool {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func stdinIsPiped() bool {
	st, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (st.Mode() & os.ModeCharDevice) == 0
}

func readAllStdin() (string, error) {
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
