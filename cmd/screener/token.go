package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-screener/internal/config"
	"github.com/jonathan/application-screener/internal/server"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API bearer token",
	Long: `Generates a signed bearer token for the REST API using the shared JWT_SECRET.

Pass the token on requests as "Authorization: Bearer <token>". It expires after JWT_EXPIRATION_HOURS (default 24).`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "screener-cli", "Subject recorded in the token claims")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	token, err := mintToken(tokenSubject)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

// mintToken signs a bearer token for the given subject using the JWT
// settings from the environment.
func mintToken(subject string) (string, error) {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load JWT config: %w", err)
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(subject)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
