package main

import (
	"fmt"

	"github.com/SalahEddineGhamri/gopractice/cmd/gopractice/ui"
	"github.com/SalahEddineGhamri/gopractice/internal/logging"
	"github.com/SalahEddineGhamri/gopractice/internal/pets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var petsCmd = &cobra.Command{
	Use:   "pets",
	Short: "Factory pattern exercises",
}

var petsFactoryCmd = &cobra.Command{
	Use:   "factory [kind]",
	Short: "Build a pet through the plain factory and make it speak",
	Long: `Dispatches the kind over the factory's constructor map and prints the
pet's sound. Supported kinds: dog, cat. No argument defaults to dog; an
unsupported kind fails with a lookup error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw string
		if len(args) == 1 {
			raw = args[0]
		}
		kind, err := pets.ParseKind(raw)
		if err != nil {
			return err
		}

		pet, err := pets.New(kind)
		if err != nil {
			return err
		}
		logging.Named(logger, "pets").Debug("pet constructed", zap.String("kind", string(kind)))
		fmt.Fprintln(cmd.OutOrStdout(), pet.Speak())
		return nil
	},
}

var petsStoreCmd = &cobra.Command{
	Use:   "store [kind]",
	Short: "Open a pet store around one concrete factory",
	Long: `The store holds a single factory behind the uniform Type/Speak/Food
interface and reports all three, never knowing which variant it was given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw string
		if len(args) == 1 {
			raw = args[0]
		}
		kind, err := pets.ParseKind(raw)
		if err != nil {
			return err
		}

		factory, err := pets.FactoryFor(kind)
		if err != nil {
			return err
		}
		report := pets.NewStore(factory).Report()
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderStoreReport(report.Type, report.Sound, report.Food))
		return nil
	},
}

func init() {
	petsCmd.AddCommand(petsFactoryCmd)
	petsCmd.AddCommand(petsStoreCmd)
}
