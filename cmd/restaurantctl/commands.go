package main

import (
	"fmt"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/service"
	"github.com/DarshanRT1/Hotel-Booking/internal/store/mongo"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace every menu item with the sample menu.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errNotConfirmed
			}

			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			d, err := connect(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			catalog := service.NewCatalogService(mongo.NewMenuItemRepository(d.storage.Database()), d.menuCache, d.logger)
			count, err := catalog.Seed(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d menu items\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm that existing menu items are deleted")

	return cmd
}

func newIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB indexes the API relies on.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			d, err := connect(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			if err := d.storage.CreateIndexes(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "indexes created")
			return nil
		},
	}
}

func newAccountCmd() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts.",
	}

	var in service.RegisterInput

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account with any role, e.g. the first admin.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !domain.Role(in.Role).Valid() {
				return fmt.Errorf("unknown role %q, want customer, staff or admin", in.Role)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			d, err := connect(ctx)
			if err != nil {
				return err
			}
			defer d.close()

			// no sessions are opened here, so no token issuer is needed
			accounts := service.NewAccountService(
				mongo.NewAccountRepository(d.storage.Database()),
				newHasher(),
				nil,
				d.logger,
				true,
			)

			account, err := accounts.CreateAccount(ctx, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s account %s (%s)\n", account.Role, account.Email, account.ID.Hex())
			return nil
		},
	}

	createCmd.Flags().StringVar(&in.Name, "name", "", "display name")
	createCmd.Flags().StringVar(&in.Email, "email", "", "login email")
	createCmd.Flags().StringVar(&in.Password, "password", "", "initial password")
	createCmd.Flags().StringVar(&in.Role, "role", string(domain.RoleStaff), "customer, staff or admin")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")

	accountCmd.AddCommand(createCmd)

	return accountCmd
}
