package main

import (
	"fmt"

	"goldencitizen-backend/internal/config"
	"goldencitizen-backend/internal/database"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/seed"

	"github.com/spf13/cobra"
)

func seedCmd(logLevel *string) *cobra.Command {
	var (
		reset bool
		file  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Şirket profilini ve emlakları yükler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.NewStructured(*logLevel, "console")
			defer log.Sync()

			data, err := loadSeedData(file)
			if err != nil {
				return err
			}

			db, err := database.Init(cfg, log)
			if err != nil {
				return err
			}

			res, err := seed.Run(db, data, reset)
			if err != nil {
				return err
			}
			if !res.Company {
				fmt.Fprintln(cmd.OutOrStdout(), "Şirket profili zaten var, seed atlandı. Yeniden yüklemek için --reset kullan.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Şirket profili ve %d emlak yüklendi.\n", res.Properties)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Mevcut profil ve emlakları silip yeniden yükle")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Gömülü veri yerine kullanılacak YAML dosyası")
	return cmd
}

func loadSeedData(file string) (*seed.Data, error) {
	if file == "" {
		return seed.Default()
	}
	return seed.Load(file)
}
