package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/keyring"
)

// KeyringSetCmd stores the tray-app notifier secret in the OS keyring
type KeyringSetCmd struct {
	Secret string `arg:"" help:"Shared secret used to authenticate with wellnest-tray"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	secret := strings.TrimSpace(cmd.Secret)
	if secret == "" {
		return errors.New("secret must not be empty")
	}

	if err := keyring.SetSecret(secret); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}

	fmt.Println("✓ Notifier secret stored successfully in OS keyring")
	fmt.Println("  Tray builds with an empty lockfile secret will authenticate with it")
	return nil
}

// KeyringGetCmd checks whether a notifier secret is stored in the OS keyring
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	secret, err := keyring.GetSecret()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no notifier secret found in keyring. Use 'wellnest keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve secret from keyring: %w", err)
	}

	fmt.Println("Notifier secret retrieved from keyring:")
	fmt.Println(maskSecret(secret))
	return nil
}

// KeyringDeleteCmd removes the notifier secret from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteSecret()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no notifier secret found in keyring")
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}

	fmt.Println("✓ Notifier secret deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}

	fmt.Println("✓ OS keyring is available")

	_, err := keyring.GetSecret()
	if err == nil {
		fmt.Println("✓ Notifier secret is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("ℹ No notifier secret stored in keyring")
	}
	return nil
}

// maskSecret keeps only the first few characters for display
func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + strings.Repeat("*", len(secret)-4)
}
