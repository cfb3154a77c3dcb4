package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"peerswap-api/internal/auth"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var macaroonCmd = &cobra.Command{
	Use:   "macaroon",
	Short: "Print the access macaroon, generating it if needed",
	Long: `Print the access macaroon used to authenticate API requests.

The root key and macaroon are created in the macaroon directory when they do
not exist yet. Send the printed value in the "macaroon" header.`,
	RunE: runMacaroon,
}

func init() {
	macaroonCmd.Flags().Bool("base64", false, "Print base64 instead of hex")
}

func runMacaroon(cmd *cobra.Command, args []string) error {
	dir := settings.GetString("macaroon_dir")
	if dir == "" {
		return fmt.Errorf("macaroon_dir is not set")
	}

	store, err := auth.LoadOrCreate(dir, nil)
	if err != nil {
		return err
	}
	raw, err := store.AccessMacaroon()
	if err != nil {
		return err
	}

	useBase64, _ := cmd.Flags().GetBool("base64")
	encoding := auth.EncodingHex
	encoded := hex.EncodeToString(raw)
	if useBase64 {
		encoding = auth.EncodingBase64
		encoded = base64.StdEncoding.EncodeToString(raw)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n  Macaroon file: %s\n", color.CyanString(filepath.Join(store.Dir(), auth.AccessMacaroonFile)))
	fmt.Fprintf(out, "  Encoding:      %s\n\n", color.CyanString(encoding))
	fmt.Fprintln(out, color.GreenString(encoded))
	if useBase64 {
		fmt.Fprintf(out, "\n  Send it with header %s\n\n", color.HiBlackString("%s: %s", auth.EncodingTypeHeader, auth.EncodingBase64))
	} else {
		fmt.Fprintln(out)
	}
	return nil
}
