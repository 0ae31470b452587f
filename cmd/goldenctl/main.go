package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Hata: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "goldenctl",
		Short: "Golden Citizen içerik ve iletişim aracı",
		Long: `goldenctl, Golden Citizen Content API için yönetim ve istemci aracıdır.

- seed: şirket profilini ve emlak portföyünü veritabanına yükler
- properties: portföyü API'den çekip kartlar halinde gösterir
- company: kurucu profilini ve güven göstergelerini gösterir
- contact: iletişim formunu gönderir, hata olursa WhatsApp linki verir`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log seviyesi (debug, info, warn, error)")

	cmd.AddCommand(
		seedCmd(&logLevel),
		propertiesCmd(&logLevel),
		companyCmd(&logLevel),
		contactCmd(&logLevel),
	)
	return cmd
}
