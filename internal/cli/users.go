package cli

import (
	"fmt"
	"os"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/martijn/userhub/internal/core/repository"
	"github.com/martijn/userhub/internal/core/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	addName  string
	addPhone string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
	Long:  "Manage user records from the command line",
}

var usersAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Add a new user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		// Prompt for password
		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Print("Confirm password: ")
		confirmPassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if string(password) != string(confirmPassword) {
			return fmt.Errorf("passwords do not match")
		}

		input := service.CreateUserInput{
			Name:     addName,
			Email:    email,
			Password: string(password),
		}
		if addPhone != "" {
			input.Phone = &addPhone
		}

		user, err := services.UserService.CreateUser(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("User '%s' created with id %d\n", user.Email, user.ID)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id: %s", args[0])
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		user, err := services.UserService.GetUser(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("user not found: %d", id)
		}

		// Confirm deletion
		fmt.Printf("Are you sure you want to delete user '%s'? (yes/no): ", user.Email)
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" {
			fmt.Println("Cancelled")
			return nil
		}

		if err := services.UserService.DeleteUser(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		fmt.Printf("User '%s' deleted successfully\n", user.Email)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		users, err := services.UserService.ListUsers(cmd.Context(), repository.UserFilter{})
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tCREATED AT")
		for _, user := range users {
			phone := ""
			if user.Phone != nil {
				phone = *user.Phone
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				user.ID,
				user.Name,
				user.Email,
				phone,
				user.CreatedAt.Format("2006-01-02 15:04:05"),
			)
		}
		w.Flush()

		return nil
	},
}

func init() {
	usersAddCmd.Flags().StringVar(&addName, "name", "", "user name (required)")
	usersAddCmd.Flags().StringVar(&addPhone, "phone", "", "phone number")

	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersListCmd)
}
