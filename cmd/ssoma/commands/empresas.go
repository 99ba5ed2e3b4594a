package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ssoma/internal/domain"
	"ssoma/internal/validate"
)

func empresasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "empresas",
		Aliases: []string{"empresa"},
		Short:   "Manage companies",
	}
	cmd.AddCommand(
		empresasListCmd(),
		empresasGetCmd(),
		empresasRUCCmd(),
		empresasCreateCmd(),
		empresasUpdateCmd(),
		empresasDeleteCmd(),
	)
	return cmd
}

func empresasListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			empresas, err := appCtx.API.ListEmpresas(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tRUC\tRAZÓN SOCIAL\tSECTOR\tSCORE")
			for _, e := range empresas {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					e.ID(), orDash(e.RUC), e.RazonSocial, orDash(e.Sector), scoreText(e.ScoreSeguridad))
			}
			return tw.Flush()
		},
	}
}

func empresasGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a company and its documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := appCtx.API.GetEmpresa(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printEmpresa(cmd.OutOrStdout(), e)
		},
	}
}

func empresasRUCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ruc <ruc>",
		Short: "Find a company by RUC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" || !validate.TaxID(args[0]) {
				return fmt.Errorf("invalid RUC %q: must be %d digits", args[0], validate.TaxIDLength)
			}
			e, err := appCtx.API.GetEmpresaByRUC(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printEmpresa(cmd.OutOrStdout(), e)
		},
	}
}

// empresaFlags are the editable fields shared by create and update.
type empresaFlags struct {
	ruc, razonSocial, direccion, sector, score string
}

func (f *empresaFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.ruc, "ruc", "", "RUC, 11 digits")
	fl.StringVar(&f.razonSocial, "razon-social", "", "legal name")
	fl.StringVar(&f.direccion, "direccion", "", "address")
	fl.StringVar(&f.sector, "sector", "", "industry sector")
	fl.StringVar(&f.score, "score", "", "safety score, 0 to 100")
}

// apply copies the flags the user set onto e. Field checks run first so
// the user sees the same messages the form would show.
func (f *empresaFlags) apply(cmd *cobra.Command, e *domain.Empresa) error {
	fl := cmd.Flags()
	if fl.Changed("ruc") {
		if !validate.TaxID(f.ruc) {
			appCtx.Dialog.Show("El RUC debe tener 11 dígitos")
			return fmt.Errorf("invalid RUC %q", f.ruc)
		}
		e.RUC = f.ruc
	}
	if fl.Changed("score") {
		if !validate.Score(f.score) {
			appCtx.Dialog.Show("El score debe estar entre 0 y 100")
			return fmt.Errorf("invalid score %q", f.score)
		}
		e.ScoreSeguridad = nil
		if n, ok := validate.ParseInt(f.score); ok {
			s := int(n)
			e.ScoreSeguridad = &s
		}
	}
	if fl.Changed("razon-social") {
		e.RazonSocial = f.razonSocial
	}
	if fl.Changed("direccion") {
		e.Direccion = f.direccion
	}
	if fl.Changed("sector") {
		e.Sector = f.sector
	}
	return nil
}

func empresasCreateCmd() *cobra.Command {
	var f empresaFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var e domain.Empresa
			if err := f.apply(cmd, &e); err != nil {
				return err
			}
			created, err := appCtx.API.CreateEmpresa(cmd.Context(), e)
			if err != nil {
				return err
			}
			appCtx.Dialog.Show("Empresa creada exitosamente: " + created.ID().String())
			return nil
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("razon-social")
	return cmd
}

func empresasUpdateCmd() *cobra.Command {
	var f empresaFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := appCtx.API.GetEmpresa(cmd.Context(), id)
			if err != nil {
				return err
			}
			e.Documentos = nil
			if err := f.apply(cmd, &e); err != nil {
				return err
			}
			if _, err := appCtx.API.UpdateEmpresa(cmd.Context(), id, e); err != nil {
				return err
			}
			appCtx.Dialog.Show("Empresa actualizada exitosamente")
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func empresasDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a company and its documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !appCtx.Dialog.Confirm("¿Está seguro de eliminar esta empresa?") {
				fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
				return nil
			}
			if err := appCtx.API.DeleteEmpresa(cmd.Context(), id); err != nil {
				return err
			}
			appCtx.Dialog.Show("Empresa eliminada exitosamente")
			return nil
		},
	}
}

func printEmpresa(w io.Writer, e domain.Empresa) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", e.ID())
	fmt.Fprintf(tw, "RUC:\t%s\n", orDash(e.RUC))
	fmt.Fprintf(tw, "Razón social:\t%s\n", e.RazonSocial)
	fmt.Fprintf(tw, "Dirección:\t%s\n", orDash(e.Direccion))
	fmt.Fprintf(tw, "Sector:\t%s\n", orDash(e.Sector))
	fmt.Fprintf(tw, "Score:\t%s\n", scoreText(e.ScoreSeguridad))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(e.Documentos) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	return printDocumentos(w, e.Documentos)
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func scoreText(s *int) string {
	if s == nil {
		return "-"
	}
	return strconv.Itoa(*s)
}
