package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"goldencitizen-backend/internal/catalog"
	"goldencitizen-backend/internal/client"
	"goldencitizen-backend/internal/config"
	"goldencitizen-backend/internal/leadform"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/messaging"
	"goldencitizen-backend/internal/profile"

	"github.com/spf13/cobra"
)

type clientEnv struct {
	cfg    *config.ClientConfig
	api    *client.Client
	linker *messaging.Linker
	log    logger.Logger
}

func newClientEnv(logLevel string) (*clientEnv, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	log := logger.NewStructured(logLevel, "console")
	return &clientEnv{
		cfg:    cfg,
		api:    client.New(cfg, client.WithLogger(log)),
		linker: messaging.NewLinker(cfg.WhatsAppBaseURL, cfg.WhatsAppNumber),
		log:    log,
	}, nil
}

func propertiesCmd(logLevel *string) *cobra.Command {
	var detail uint

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Emlak portföyünü listeler",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newClientEnv(*logLevel)
			if err != nil {
				return err
			}
			defer env.log.Sync()

			prices, err := catalog.NewPriceFormatter(env.cfg.Locale, env.cfg.Currency)
			if err != nil {
				return err
			}
			view := catalog.NewView(env.api, prices, env.linker, env.log)
			out := cmd.OutOrStdout()

			switch view.Mount(cmd.Context()) {
			case catalog.PhaseFailed:
				return fmt.Errorf("%s (Yeniden Dene: goldenctl properties)", view.ErrorMessage())
			case catalog.PhaseEmpty:
				fmt.Fprintln(out, "Şu anda listelenecek emlak yok.")
				return nil
			}

			if detail != 0 {
				if err := view.Select(detail); err != nil {
					return err
				}
				d, _ := view.Selected()
				printDetail(out, d)
				return nil
			}

			for _, c := range view.Cards() {
				printCard(out, c)
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&detail, "id", 0, "Sadece bu emlağın detayını göster")
	return cmd
}

func printCard(w io.Writer, c catalog.Card) {
	features := strings.Join(c.Features, ", ")
	if c.MoreFeatures > 0 {
		features += fmt.Sprintf(" +%d", c.MoreFeatures)
	}
	fmt.Fprintf(w, "[%d] %s - %s\n", c.ID, c.Title, c.Price)
	fmt.Fprintf(w, "    %s | %s | %s | %d yatak odası | %d banyo\n", c.Location, c.Type, c.Size, c.Bedrooms, c.Bathrooms)
	if features != "" {
		fmt.Fprintf(w, "    %s\n", features)
	}
	fmt.Fprintf(w, "    WhatsApp: %s\n\n", c.InquiryURL)
}

func printDetail(w io.Writer, d catalog.Detail) {
	fmt.Fprintf(w, "%s\n%s\n\n", d.Title, d.Price)
	fmt.Fprintf(w, "Konum: %s\nTip: %s\nAlan: %s\nYatak odası: %d\nBanyo: %d\n\n", d.Location, d.Type, d.Size, d.Bedrooms, d.Bathrooms)
	fmt.Fprintln(w, d.Description)
	if len(d.Features) > 0 {
		fmt.Fprintln(w, "\nÖzellikler:")
		for _, f := range d.Features {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
	fmt.Fprintf(w, "\nWhatsApp ile bilgi al: %s\n", d.InquiryURL)
}

func companyCmd(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "company",
		Short: "Kurucu profilini ve güven göstergelerini gösterir",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newClientEnv(*logLevel)
			if err != nil {
				return err
			}
			defer env.log.Sync()

			view := profile.NewView(env.api, env.log)
			st := view.Mount(cmd.Context())
			if st.Failed() {
				return fmt.Errorf("%s (Yeniden Dene: goldenctl company)", st.Message)
			}

			out := cmd.OutOrStdout()
			f := st.Data.Founder
			fmt.Fprintf(out, "%s - %s\n%s\n%s\n\n%s\n", f.Name, f.Title, f.Experience, f.Credentials, f.Description)
			for _, a := range f.Achievements {
				fmt.Fprintf(out, "  ✓ %s\n", a)
			}
			fmt.Fprintln(out)
			for _, ti := range view.TrustIndicators() {
				fmt.Fprintf(out, "%-18s %s\n", ti.Label, ti.Value)
			}
			return nil
		},
	}
}

func contactCmd(logLevel *string) *cobra.Command {
	var values leadform.Values

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "İletişim formunu gönderir",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newClientEnv(*logLevel)
			if err != nil {
				return err
			}
			defer env.log.Sync()

			form := leadform.New(env.api, env.api, env.linker, env.log)
			out := cmd.OutOrStdout()

			// İletişim bilgisi alınamasa da form gönderilebilir
			if st := form.Mount(cmd.Context()); st.Ready() {
				c := st.Data.Contact
				fmt.Fprintf(out, "Golden Citizen | %s | %s | %s\n\n", c.Email, c.Address, c.OfficeHours)
			}

			if err := fillForm(form, values); err != nil {
				return err
			}
			return submitForm(cmd.Context(), out, form)
		},
	}

	cmd.Flags().StringVar(&values.Name, "name", "", "Ad Soyad (zorunlu)")
	cmd.Flags().StringVar(&values.Email, "email", "", "E-posta (zorunlu)")
	cmd.Flags().StringVar(&values.Phone, "phone", "", "Telefon (zorunlu)")
	cmd.Flags().StringVar(&values.Subject, "subject", "", "Konu")
	cmd.Flags().StringVar(&values.Message, "message", "", "Mesaj")
	return cmd
}

func fillForm(form *leadform.Form, v leadform.Values) error {
	fields := []struct {
		field leadform.Field
		value string
	}{
		{leadform.FieldName, v.Name},
		{leadform.FieldEmail, v.Email},
		{leadform.FieldPhone, v.Phone},
		{leadform.FieldMessage, v.Message},
	}
	if v.Subject != "" {
		fields = append(fields, struct {
			field leadform.Field
			value string
		}{leadform.FieldSubject, v.Subject})
	}
	for _, f := range fields {
		if err := form.Set(f.field, f.value); err != nil {
			return err
		}
	}
	return nil
}

func submitForm(ctx context.Context, out io.Writer, form *leadform.Form) error {
	switch form.Submit(ctx) {
	case leadform.PhaseSubmittedOK:
		fmt.Fprintln(out, form.Notice())
		return nil
	case leadform.PhaseEditing:
		missing := make([]string, 0, len(form.Missing()))
		for _, f := range form.Missing() {
			missing = append(missing, string(f))
		}
		return fmt.Errorf("%s (%s)", form.Notice(), strings.Join(missing, ", "))
	default:
		fmt.Fprintln(out, form.Notice())
		fmt.Fprintf(out, "WhatsApp: %s\n", form.WhatsAppLink())
		return fmt.Errorf("form gönderilemedi")
	}
}
