package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/casestudy-api/internal/service"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "casestudyctl",
		Short:        "Operator helpers for the case study API",
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.AddCommand(newHashPasswordCmd(), newDailyTokenCmd())
	return root
}

func newHashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password from stdin and print an AUTH_PASSWORD_HASH line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "Enter the password you want to hash: ")
			password, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := hashPassword(password, cost)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nAdd this to your .env file as:\nAUTH_PASSWORD_HASH=%s\n", hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 10, "bcrypt cost")
	return cmd
}

func newDailyTokenCmd() *cobra.Command {
	var (
		secret string
		date   string
	)
	cmd := &cobra.Command{
		Use:   "daily-token",
		Short: "Print the access token valid for a UTC day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				return errors.New("token secret required (--secret or AUTH_TOKEN_SECRET)")
			}
			at := time.Now()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				at = parsed
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.DailyToken(secret, at))
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("AUTH_TOKEN_SECRET"), "token secret")
	cmd.Flags().StringVar(&date, "date", "", "UTC day as YYYY-MM-DD (default today)")
	return cmd
}

func hashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
