// Command polka evaluates a Polish-notation stack expression and prints the
// resulting stack.
//
//	polka "3 dup *"
//	polka --stack 1,2,3 "1 2 3 + -111 - * 10 %"
//	echo "4 5" | polka "input input +"
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cloudcmds/polka"
	"github.com/cloudcmds/polka/stmt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "polka [expression]",
	Short: "Evaluate a Polish-notation stack expression",
	Long: "Evaluate a Polish-notation stack expression and print the resulting\n" +
		"stack, bottom-to-top. The expression is read from the arguments, the\n" +
		"-c flag, or stdin. Input statements read integers from stdin.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		processGlobalFlags()

		logger := newLogger()

		code := viper.GetString("code")
		if code == "" {
			code = strings.Join(args, " ")
		}
		if code == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			code = string(data)
		}

		stack, err := parseStack(viper.GetString("stack"))
		if err != nil {
			return err
		}

		opts := []polka.Option{
			polka.WithInput(stmt.NewReaderInput(os.Stdin)),
		}
		if viper.GetBool("no-opt") {
			opts = append(opts, polka.WithoutOptimization())
		}

		s := polka.Compile(code, opts...)
		logger.Debug().
			Str("compiled", s.String()).
			Int("arguments", s.ArgumentsCount()).
			Int("results", s.ResultsCount()).
			Bool("pure", s.IsPure()).
			Msg("compiled expression")

		out, err := s.Apply(cmd.Context(), stack)
		if err != nil {
			return err
		}
		fmt.Println(color.CyanString(out.String()))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("code", "c", "", "Expression to evaluate")
	rootCmd.Flags().String("stack", "", "Initial stack as comma-separated integers, bottom-to-top")
	rootCmd.Flags().Bool("no-opt", false, "Disable constant folding")
	rootCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log compilation steps")
	viper.BindPFlags(rootCmd.Flags())
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.Disabled
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

// parseStack parses the --stack flag, e.g. "1,2,3".
func parseStack(value string) (stmt.Stack, error) {
	if value == "" {
		return stmt.Stack{}, nil
	}
	var stack stmt.Stack
	for _, field := range strings.Split(value, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid stack value %q", field)
		}
		stack = append(stack, int32(n))
	}
	return stack, nil
}

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", color.RedString(s))
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
