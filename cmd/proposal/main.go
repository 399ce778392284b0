package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sonaeson/groupbuy-proposal/config"
	"github.com/sonaeson/groupbuy-proposal/internal/bootstrap"
	"github.com/sonaeson/groupbuy-proposal/internal/logging"
	"github.com/sonaeson/groupbuy-proposal/internal/proposal/domain"
	prophttp "github.com/sonaeson/groupbuy-proposal/internal/proposal/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(loadGenerator).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadGenerator builds the real OpenAI-backed service from the environment.
func loadGenerator() (prophttp.Generator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.InitLogger(logging.ParseLevel(cfg.App.LogLevel), false)
	return bootstrap.NewProposalService(cfg), nil
}

func newRootCmd(load func() (prophttp.Generator, error)) *cobra.Command {
	root := &cobra.Command{
		Use:           "proposal",
		Short:         "Generate group-purchase proposals from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(load))
	return root
}

func newGenerateCmd(load func() (prophttp.Generator, error)) *cobra.Command {
	var (
		req     domain.ProposalRequest
		goal    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one proposal and print it to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Goal = domain.Quantity(goal)
			if err := req.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), prophttp.MsgMissingFields)
				return err
			}

			gen, err := load()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "configuration error: %v\n", err)
				return err
			}
			if !verbose {
				logging.GetLogger().SetLevel(logrus.WarnLevel)
			}

			res, err := gen.Generate(cmd.Context(), req)
			if err != nil {
				var upErr *domain.UpstreamError
				if errors.As(err, &upErr) {
					fmt.Fprintln(cmd.ErrOrStderr(), prophttp.MsgGenerationFailed)
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				}
				return err
			}
			return printProposal(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&req.Product, "product", "", "product name (required)")
	cmd.Flags().StringVar(&req.Target, "target", "", "target customers (required)")
	cmd.Flags().StringVar(&goal, "goal", "", "sales quantity goal (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log upstream calls")
	return cmd
}

func printProposal(w io.Writer, res *domain.ProposalResult) error {
	_, err := io.WriteString(w, res.Proposal)
	if err == nil && len(res.Proposal) > 0 && res.Proposal[len(res.Proposal)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
