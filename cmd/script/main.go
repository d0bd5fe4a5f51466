package main

import (
	"context"
	"log"

	"agroplan/api"
	"agroplan/cmd"
	"agroplan/internal"
	"agroplan/internal/domain"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

// operational CLI for one-off runs against the live stack - the same
// wiring the API uses, minus the HTTP layer

func newContext() context.Context {
	profile, _ := domain.NewProfile()
	return context.WithValue(context.Background(), domain.ContextProfileKey, profile)
}

func withHandler(run func(ctx context.Context, handler *api.ApiHandler, args []string) error) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, args []string) {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			log.Fatal(err)
		}
		defer cmd.CloseDependencies(handler)

		if err := run(newContext(), handler, args); err != nil {
			log.Fatal(err)
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "agroplan",
		Short: "run scenario engine operations from the command line",
	}

	executeCmd := &cobra.Command{
		Use:   "execute <scenario-id>",
		Short: "execute a scenario and print its results",
		Args:  cobra.ExactArgs(1),
		Run: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			scenarioID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			executed, err := handler.ScenarioService.Execute(ctx, scenarioID, nil)
			if err != nil {
				return err
			}
			internal.Pprint(executed)
			return nil
		}),
	}

	variantsCmd := &cobra.Command{
		Use:   "variants <scenario-id>",
		Short: "generate and execute the what-if variants of a scenario",
		Args:  cobra.ExactArgs(1),
		Run: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			scenarioID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			variants, err := handler.VariantService.GenerateVariants(ctx, scenarioID, nil)
			if err != nil {
				return err
			}
			internal.Pprint(variants)
			return nil
		}),
	}

	compareCmd := &cobra.Command{
		Use:   "compare <scenario-id> <scenario-id> [scenario-id...]",
		Short: "rank executed scenarios with the default weights",
		Args:  cobra.MinimumNArgs(2),
		Run: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			scenarioIDs := make([]uuid.UUID, 0, len(args))
			for _, arg := range args {
				id, err := uuid.Parse(arg)
				if err != nil {
					return err
				}
				scenarioIDs = append(scenarioIDs, id)
			}
			result, err := handler.ComparisonService.Compare(ctx, scenarioIDs, nil)
			if err != nil {
				return err
			}
			internal.Pprint(result)
			return nil
		}),
	}

	digestCmd := &cobra.Command{
		Use:   "digest <firm-id> <recipient>",
		Short: "send the active alert digest for a firm",
		Args:  cobra.ExactArgs(2),
		Run: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			firmID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			count, err := handler.AlertDigestService.SendAlertDigest(ctx, firmID, args[1])
			if err != nil {
				return err
			}
			log.Printf("digest sent with %d alert(s)", count)
			return nil
		}),
	}

	rootCmd.AddCommand(executeCmd, variantsCmd, compareCmd, digestCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
