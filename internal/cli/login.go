package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/me/p2h/internal/session"
	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var phone, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the P2H backend",
		Long:  "Log in with phone number and password; the token, role, and profile are stored for later commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if phone == "" {
				fmt.Print("Nomor HP: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read phone number: %w", err)
				}
				phone = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Print("Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}
			if phone == "" || password == "" {
				return fmt.Errorf("phone number and password are required")
			}

			res, err := client.Login(cmd.Context(), phone, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			c := session.Credentials{Token: res.AccessToken, Profile: res.User}
			if res.User != nil {
				c.Role = res.User.Role
			}
			if c.Role == "" {
				info, _ := session.ParseToken(res.AccessToken)
				c.Role = info.Role
			}
			if err := creds.Write(c); err != nil {
				return err
			}

			name := "pengguna"
			if res.User != nil && res.User.FullName != "" {
				name = res.User.FullName
			}
			fmt.Printf("Login berhasil. Selamat datang, %s (%s).\n", name, c.Role.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := creds.Clear(); err != nil {
				return err
			}
			fmt.Println("Sesi dihapus.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := creds.Read()
			if c.Anonymous() {
				fmt.Println("Tidak ada sesi. Jalankan `p2h login`.")
				return nil
			}

			profile := c.Profile
			if refresh {
				p, err := client.Me(cmd.Context())
				if err != nil {
					return fmt.Errorf("fetch profile: %w", err)
				}
				profile = p
			}

			if session.IsTokenExpired(c.Token) {
				fmt.Println("(token kedaluwarsa, login ulang diperlukan)")
			}
			fmt.Printf("Peran: %s\n", c.Role.Label())
			if profile != nil {
				fmt.Printf("Nama:  %s\n", profile.FullName)
				fmt.Printf("HP:    %s\n", profile.PhoneNumber)
				if profile.Company != "" {
					fmt.Printf("PT:    %s\n", profile.Company)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch the profile from the backend instead of the cache")
	return cmd
}
